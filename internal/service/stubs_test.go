package service

import (
	"context"
	"time"

	"github.com/Albertgui/teg-backend/internal/model"
	"github.com/Albertgui/teg-backend/internal/repository"
	"github.com/Albertgui/teg-backend/internal/worker"
)

// ── In-memory repository stubs ────────────────────────────────────────────────

type stubUsuarioRepo struct {
	users  map[string]*model.Usuario
	nextID uint
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[string]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if _, ok := r.users[u.Username]; ok {
		return &repository.ErrCampoDuplicado{Campo: "username"}
	}
	r.nextID++
	u.ID = r.nextID
	r.users[u.Username] = u
	return nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, repository.ErrNoEncontrado
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uint) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNoEncontrado
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	for k, existing := range r.users {
		if existing.ID == u.ID && k != u.Username {
			delete(r.users, k)
		}
	}
	r.users[u.Username] = u
	return nil
}

type stubProyectoRepo struct {
	proyectos map[uint]*model.Proyecto
	resumenes map[uint]repository.ResumenAgregado
	deleteErr error
	nextID    uint
}

func newStubProyectoRepo() *stubProyectoRepo {
	return &stubProyectoRepo{
		proyectos: make(map[uint]*model.Proyecto),
		resumenes: make(map[uint]repository.ResumenAgregado),
	}
}

func (r *stubProyectoRepo) Create(_ context.Context, p *model.Proyecto) error {
	r.nextID++
	p.ID = r.nextID
	copia := *p
	r.proyectos[p.ID] = &copia
	return nil
}

func (r *stubProyectoRepo) FindByID(_ context.Context, id, userID uint) (*model.Proyecto, error) {
	p, ok := r.proyectos[id]
	if !ok || p.IDUser != userID {
		return nil, repository.ErrNoEncontrado
	}
	copia := *p
	return &copia, nil
}

func (r *stubProyectoRepo) List(_ context.Context, userID uint) ([]model.Proyecto, error) {
	var out []model.Proyecto
	for _, p := range r.proyectos {
		if p.IDUser == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProyectoRepo) Save(_ context.Context, p *model.Proyecto) error {
	copia := *p
	r.proyectos[p.ID] = &copia
	return nil
}

func (r *stubProyectoRepo) Delete(_ context.Context, id, userID uint) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	p, ok := r.proyectos[id]
	if !ok || p.IDUser != userID {
		return repository.ErrNoEncontrado
	}
	delete(r.proyectos, id)
	return nil
}

func (r *stubProyectoRepo) Resumen(_ context.Context, proyectoID uint) (repository.ResumenAgregado, error) {
	agg := r.resumenes[proyectoID]
	agg.ProyectoID = proyectoID
	return agg, nil
}

func (r *stubProyectoRepo) Resumenes(_ context.Context, userID uint) (map[uint]repository.ResumenAgregado, error) {
	out := make(map[uint]repository.ResumenAgregado)
	for id, p := range r.proyectos {
		if p.IDUser == userID {
			out[id] = r.resumenes[id]
		}
	}
	return out, nil
}

// stubPartidaRepo resolves ownership through the parent project, like the real
// JOIN-scoped queries.
type stubPartidaRepo struct {
	partidas  map[uint]*model.Partida
	proyectos *stubProyectoRepo
	nextID    uint
}

func newStubPartidaRepo(proyectos *stubProyectoRepo) *stubPartidaRepo {
	return &stubPartidaRepo{partidas: make(map[uint]*model.Partida), proyectos: proyectos}
}

func (r *stubPartidaRepo) owner(p *model.Partida) uint {
	parent, ok := r.proyectos.proyectos[p.ProyectoID]
	if !ok {
		return 0
	}
	return parent.IDUser
}

func (r *stubPartidaRepo) Create(_ context.Context, p *model.Partida) error {
	r.nextID++
	p.ID = r.nextID
	copia := *p
	r.partidas[p.ID] = &copia
	return nil
}

func (r *stubPartidaRepo) FindByID(_ context.Context, id, userID uint) (*model.Partida, error) {
	p, ok := r.partidas[id]
	if !ok || r.owner(p) != userID {
		return nil, repository.ErrNoEncontrado
	}
	copia := *p
	return &copia, nil
}

func (r *stubPartidaRepo) List(_ context.Context, userID uint) ([]model.Partida, error) {
	var out []model.Partida
	for _, p := range r.partidas {
		if r.owner(p) == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPartidaRepo) Vista(_ context.Context, userID uint, proyectoID *uint) ([]repository.PartidaVista, error) {
	var out []repository.PartidaVista
	for _, p := range r.partidas {
		if r.owner(p) != userID {
			continue
		}
		if proyectoID != nil && p.ProyectoID != *proyectoID {
			continue
		}
		parent := r.proyectos.proyectos[p.ProyectoID]
		out = append(out, repository.PartidaVista{Partida: *p, NombreProyecto: parent.Nombre})
	}
	return out, nil
}

func (r *stubPartidaRepo) Save(_ context.Context, p *model.Partida) error {
	copia := *p
	r.partidas[p.ID] = &copia
	return nil
}

func (r *stubPartidaRepo) Complete(_ context.Context, id, userID uint) error {
	p, ok := r.partidas[id]
	if !ok || r.owner(p) != userID {
		return repository.ErrNoEncontrado
	}
	if p.FechaFinalReal == nil {
		hoy := time.Now().Truncate(24 * time.Hour)
		p.FechaFinalReal = &hoy
	}
	p.PorcentajeAvance = 100
	return nil
}

func (r *stubPartidaRepo) Delete(_ context.Context, id, userID uint) error {
	p, ok := r.partidas[id]
	if !ok || r.owner(p) != userID {
		return repository.ErrNoEncontrado
	}
	delete(r.partidas, id)
	return nil
}

type stubResponsableRepo struct {
	responsables map[uint]*model.Responsable
	asignaciones []model.ProyectoResponsable
	deleteErr    error
	nextID       uint
	proyectos    *stubProyectoRepo
}

func newStubResponsableRepo(proyectos *stubProyectoRepo) *stubResponsableRepo {
	return &stubResponsableRepo{
		responsables: make(map[uint]*model.Responsable),
		proyectos:    proyectos,
	}
}

func (r *stubResponsableRepo) Create(_ context.Context, resp *model.Responsable) error {
	for _, existing := range r.responsables {
		if existing.Cedula == resp.Cedula {
			return &repository.ErrCampoDuplicado{Campo: "cedula"}
		}
		if existing.Email == resp.Email {
			return &repository.ErrCampoDuplicado{Campo: "email"}
		}
	}
	r.nextID++
	resp.ID = r.nextID
	copia := *resp
	r.responsables[resp.ID] = &copia
	return nil
}

func (r *stubResponsableRepo) FindByID(_ context.Context, id, userID uint) (*model.Responsable, error) {
	resp, ok := r.responsables[id]
	if !ok || resp.IDUser != userID {
		return nil, repository.ErrNoEncontrado
	}
	copia := *resp
	return &copia, nil
}

func (r *stubResponsableRepo) List(_ context.Context, userID uint) ([]model.Responsable, error) {
	var out []model.Responsable
	for _, resp := range r.responsables {
		if resp.IDUser == userID {
			out = append(out, *resp)
		}
	}
	return out, nil
}

func (r *stubResponsableRepo) Save(_ context.Context, resp *model.Responsable) error {
	copia := *resp
	r.responsables[resp.ID] = &copia
	return nil
}

func (r *stubResponsableRepo) Delete(_ context.Context, id, userID uint) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	resp, ok := r.responsables[id]
	if !ok || resp.IDUser != userID {
		return repository.ErrNoEncontrado
	}
	delete(r.responsables, id)
	return nil
}

func (r *stubResponsableRepo) CreateAsignacion(_ context.Context, a *model.ProyectoResponsable) error {
	for _, existing := range r.asignaciones {
		if existing.ProyectoID == a.ProyectoID && existing.ResponsableID == a.ResponsableID {
			return &repository.ErrCampoDuplicado{Campo: "asignacion"}
		}
	}
	r.asignaciones = append(r.asignaciones, *a)
	return nil
}

func (r *stubResponsableRepo) StaffPorProyecto(_ context.Context, proyectoID, userID uint) ([]repository.StaffRow, error) {
	parent, ok := r.proyectos.proyectos[proyectoID]
	if !ok || parent.IDUser != userID {
		return nil, nil
	}
	var rows []repository.StaffRow
	for _, a := range r.asignaciones {
		if a.ProyectoID != proyectoID {
			continue
		}
		resp := r.responsables[a.ResponsableID]
		rows = append(rows, repository.StaffRow{
			ID:             resp.ID,
			Cedula:         resp.Cedula,
			NombreCompleto: resp.NombreCompleto,
			Especialidad:   resp.Especialidad,
			Email:          resp.Email,
			Telefono:       resp.Telefono,
			Rol:            a.Rol,
		})
	}
	return rows, nil
}

// ── Notification sink stub ────────────────────────────────────────────────────

type stubNotificador struct {
	proyectos []worker.ProyectoNotificacion
	partidas  []worker.PartidaNotificacion
	emails    []worker.AsignacionEmail
	err       error
}

func (n *stubNotificador) EnqueueProyecto(_ context.Context, payload worker.ProyectoNotificacion) error {
	if n.err != nil {
		return n.err
	}
	n.proyectos = append(n.proyectos, payload)
	return nil
}

func (n *stubNotificador) EnqueuePartida(_ context.Context, payload worker.PartidaNotificacion) error {
	if n.err != nil {
		return n.err
	}
	n.partidas = append(n.partidas, payload)
	return nil
}

func (n *stubNotificador) EnqueueEmail(_ context.Context, payload worker.AsignacionEmail) error {
	if n.err != nil {
		return n.err
	}
	n.emails = append(n.emails, payload)
	return nil
}
