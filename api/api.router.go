// FilePath: api/api.router.go
package api

import (
	"net/http"

	"github.com/gobees/hub/api/resources"
	"github.com/gobees/hub/internal/beeservice"
	"github.com/gorilla/mux"
)

type Router struct {
	router    *mux.Router
	resources *resources.Resources
}

func NewRouter(svc *beeservice.BeeService) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		resources: resources.NewResources(svc),
	}

	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	// API version prefix
	api := r.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", r.resources.HealthCheck).Methods(http.MethodGet)

	// Whole-store wipe
	api.HandleFunc("/data", r.resources.Admin.DeleteEverything).Methods(http.MethodDelete)

	// Apiaries
	apiaries := api.PathPrefix("/apiaries").Subrouter()
	apiaries.HandleFunc("", r.resources.Apiaries.ListApiaries).Methods(http.MethodGet)
	apiaries.HandleFunc("", r.resources.Apiaries.SaveApiary).Methods(http.MethodPost)
	apiaries.HandleFunc("", r.resources.Apiaries.DeleteAllApiaries).Methods(http.MethodDelete)
	apiaries.HandleFunc("/next-id", r.resources.Apiaries.NextApiaryID).Methods(http.MethodGet)
	apiaries.HandleFunc("/{id:[0-9]+}", r.resources.Apiaries.GetApiary).Methods(http.MethodGet)
	apiaries.HandleFunc("/{id:[0-9]+}", r.resources.Apiaries.SaveApiaryByID).Methods(http.MethodPut)
	apiaries.HandleFunc("/{id:[0-9]+}", r.resources.Apiaries.DeleteApiary).Methods(http.MethodDelete)
	apiaries.HandleFunc("/{id:[0-9]+}/hives", r.resources.Hives.ListHives).Methods(http.MethodGet)
	apiaries.HandleFunc("/{id:[0-9]+}/hives", r.resources.Hives.SaveHive).Methods(http.MethodPost)

	// Hives
	hives := api.PathPrefix("/hives").Subrouter()
	hives.HandleFunc("/next-id", r.resources.Hives.NextHiveID).Methods(http.MethodGet)
	hives.HandleFunc("/{id:[0-9]+}", r.resources.Hives.GetHive).Methods(http.MethodGet)
	hives.HandleFunc("/{id:[0-9]+}", r.resources.Hives.DeleteHive).Methods(http.MethodDelete)
	hives.HandleFunc("/{id:[0-9]+}/records", r.resources.Records.SaveRecord).Methods(http.MethodPost)
	hives.HandleFunc("/{id:[0-9]+}/records/batch", r.resources.Records.SaveRecords).Methods(http.MethodPost)
	hives.HandleFunc("/{id:[0-9]+}/recordings", r.resources.Recordings.GetRecording).Methods(http.MethodGet)
	hives.HandleFunc("/{id:[0-9]+}/recordings/{date}", r.resources.Recordings.DeleteRecording).Methods(http.MethodDelete)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
