package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ecokosova-dashboard/internal/api"
	"ecokosova-dashboard/internal/models"
	"ecokosova-dashboard/internal/routes"
	"ecokosova-dashboard/internal/toast"
)

func badRequest(msg string, err error) *api.Error {
	return &api.Error{Message: msg, StatusCode: http.StatusBadRequest, Err: err}
}

func id(r *http.Request) string { return chi.URLParam(r, "id") }

type none struct{}

// invalidating drops cached routes once call succeeds
func invalidating[T any](svc *routes.Service, call func(r *http.Request) (T, error)) func(r *http.Request) (T, error) {
	return func(r *http.Request) (T, error) {
		out, err := call(r)
		if err == nil {
			svc.Invalidate()
		}
		return out, err
	}
}

// RegisterContainerRoutes mounts container CRUD and collection actions
func RegisterContainerRoutes(r chi.Router, gw *api.Client, toasts *toast.Queue, routeSvc *routes.Service) {
	r.Get("/containers", query(func(r *http.Request) ([]models.Container, error) {
		return gw.ListContainers(r.Context())
	}))
	r.Get("/containers/critical", query(func(r *http.Request) ([]models.Container, error) {
		return gw.ListCriticalContainers(r.Context())
	}))
	r.Get("/containers/zone/{zoneId}", query(func(r *http.Request) ([]models.Container, error) {
		return gw.ListContainersByZone(r.Context(), chi.URLParam(r, "zoneId"))
	}))
	r.Get("/containers/{id}", query(func(r *http.Request) (*models.Container, error) {
		return gw.GetContainer(r.Context(), id(r))
	}))
	r.Post("/containers", action(toasts, http.StatusCreated, "Kontejneri u krijua me sukses",
		invalidating(routeSvc, withBody(func(r *http.Request, in models.CreateContainerRequest) (*models.Container, error) {
			return gw.CreateContainer(r.Context(), in)
		}))))
	r.Put("/containers/{id}", action(toasts, http.StatusOK, "Kontejneri u përditësua me sukses",
		invalidating(routeSvc, withBody(func(r *http.Request, in models.UpdateContainerRequest) (*models.Container, error) {
			return gw.UpdateContainer(r.Context(), id(r), in)
		}))))
	r.Delete("/containers/{id}", action(toasts, http.StatusNoContent, "Kontejneri u fshi me sukses",
		invalidating(routeSvc, func(r *http.Request) (none, error) {
			return none{}, gw.DeleteContainer(r.Context(), id(r))
		})))
	r.Post("/containers/{id}/empty", action(toasts, http.StatusOK, "Kontejneri u zbraz",
		invalidating(routeSvc, func(r *http.Request) (map[string]string, error) {
			msg, err := gw.EmptyContainer(r.Context(), id(r))
			return map[string]string{"message": msg}, err
		})))
	r.Post("/containers/{id}/schedule-collection", action(toasts, http.StatusOK, "Mbledhja u planifikua",
		invalidating(routeSvc, withBody(func(r *http.Request, in models.ScheduleCollectionRequest) (map[string]string, error) {
			msg, err := gw.ScheduleCollection(r.Context(), id(r), in)
			return map[string]string{"message": msg}, err
		}))))
}

func RegisterZoneRoutes(r chi.Router, gw *api.Client, toasts *toast.Queue, routeSvc *routes.Service) {
	r.Get("/zones", query(func(r *http.Request) ([]models.Zone, error) {
		return gw.ListZones(r.Context())
	}))
	r.Get("/zones/statistics", query(func(r *http.Request) ([]models.ZoneStatistics, error) {
		return gw.ZoneStatistics(r.Context())
	}))
	r.Post("/zones", action(toasts, http.StatusCreated, "Zona u krijua me sukses",
		withBody(func(r *http.Request, in models.CreateZoneRequest) (*models.Zone, error) {
			return gw.CreateZone(r.Context(), in)
		})))
	r.Put("/zones/{id}", action(toasts, http.StatusOK, "Zona u përditësua me sukses",
		invalidating(routeSvc, withBody(func(r *http.Request, in models.UpdateZoneRequest) (*models.Zone, error) {
			return gw.UpdateZone(r.Context(), id(r), in)
		}))))
	r.Delete("/zones/{id}", action(toasts, http.StatusNoContent, "Zona u fshi me sukses",
		invalidating(routeSvc, func(r *http.Request) (none, error) {
			return none{}, gw.DeleteZone(r.Context(), id(r))
		})))
}

func RegisterTruckRoutes(r chi.Router, gw *api.Client, toasts *toast.Queue) {
	r.Get("/trucks", query(func(r *http.Request) ([]models.Truck, error) {
		return gw.ListTrucks(r.Context())
	}))
	r.Get("/trucks/available", query(func(r *http.Request) ([]models.Truck, error) {
		return gw.ListAvailableTrucks(r.Context())
	}))
	r.Get("/trucks/{id}", query(func(r *http.Request) (*models.Truck, error) {
		return gw.GetTruck(r.Context(), id(r))
	}))
	r.Post("/trucks", action(toasts, http.StatusCreated, "Kamioni u krijua me sukses",
		withBody(func(r *http.Request, in models.CreateTruckRequest) (*models.Truck, error) {
			return gw.CreateTruck(r.Context(), in)
		})))
	r.Put("/trucks/{id}", action(toasts, http.StatusOK, "Kamioni u përditësua me sukses",
		withBody(func(r *http.Request, in models.UpdateTruckRequest) (*models.Truck, error) {
			return gw.UpdateTruck(r.Context(), id(r), in)
		})))
	r.Delete("/trucks/{id}", action(toasts, http.StatusNoContent, "Kamioni u fshi me sukses",
		func(r *http.Request) (none, error) {
			return none{}, gw.DeleteTruck(r.Context(), id(r))
		}))
	r.Post("/trucks/{id}/assign-route", action(toasts, http.StatusOK, "Rruga iu caktua kamionit",
		withBody(func(r *http.Request, in models.AssignRouteRequest) (*models.Truck, error) {
			return gw.AssignRoute(r.Context(), id(r), in)
		})))
	r.Post("/trucks/{id}/release-route", action(toasts, http.StatusOK, "Kamioni u lirua",
		func(r *http.Request) (*models.Truck, error) {
			return gw.ReleaseRoute(r.Context(), id(r))
		}))
}

func RegisterCitizenRoutes(r chi.Router, gw *api.Client, toasts *toast.Queue) {
	r.Get("/citizens", query(func(r *http.Request) ([]models.Citizen, error) {
		return gw.ListCitizens(r.Context())
	}))
	r.Get("/citizens/{id}", query(func(r *http.Request) (*models.Citizen, error) {
		return gw.GetCitizen(r.Context(), id(r))
	}))
	r.Post("/citizens", action(toasts, http.StatusCreated, "Qytetari u regjistrua me sukses",
		withBody(func(r *http.Request, in models.CreateCitizenRequest) (*models.Citizen, error) {
			return gw.CreateCitizen(r.Context(), in)
		})))
	r.Put("/citizens/{id}", action(toasts, http.StatusOK, "Qytetari u përditësua me sukses",
		withBody(func(r *http.Request, in models.UpdateCitizenRequest) (*models.Citizen, error) {
			return gw.UpdateCitizen(r.Context(), id(r), in)
		})))
	r.Delete("/citizens/{id}", action(toasts, http.StatusNoContent, "Qytetari u fshi me sukses",
		func(r *http.Request) (none, error) {
			return none{}, gw.DeleteCitizen(r.Context(), id(r))
		}))
}

func RegisterCycleRoutes(r chi.Router, gw *api.Client, toasts *toast.Queue) {
	r.Get("/cycles", query(func(r *http.Request) ([]models.Cycle, error) {
		return gw.ListCycles(r.Context())
	}))
	r.Get("/cycles/active", query(func(r *http.Request) ([]models.Cycle, error) {
		return gw.ListActiveCycles(r.Context())
	}))
	r.Get("/cycles/zone/{zoneId}", query(func(r *http.Request) ([]models.Cycle, error) {
		return gw.ListCyclesByZone(r.Context(), chi.URLParam(r, "zoneId"))
	}))
	r.Get("/cycles/{id}", query(func(r *http.Request) (*models.Cycle, error) {
		return gw.GetCycle(r.Context(), id(r))
	}))
	r.Post("/cycles", action(toasts, http.StatusCreated, "Cikli u krijua me sukses",
		withBody(func(r *http.Request, in models.CreateCycleRequest) (*models.Cycle, error) {
			return gw.CreateCycle(r.Context(), in)
		})))
	r.Put("/cycles/{id}", action(toasts, http.StatusOK, "Cikli u përditësua me sukses",
		withBody(func(r *http.Request, in models.UpdateCycleRequest) (*models.Cycle, error) {
			return gw.UpdateCycle(r.Context(), id(r), in)
		})))
	r.Delete("/cycles/{id}", action(toasts, http.StatusNoContent, "Cikli u fshi me sukses",
		func(r *http.Request) (none, error) {
			return none{}, gw.DeleteCycle(r.Context(), id(r))
		}))
	r.Post("/cycles/{id}/activate", action(toasts, http.StatusOK, "Cikli u aktivizua",
		func(r *http.Request) (*models.Cycle, error) {
			return gw.ActivateCycle(r.Context(), id(r))
		}))
	r.Post("/cycles/{id}/complete", action(toasts, http.StatusOK, "Cikli u përfundua",
		func(r *http.Request) (*models.Cycle, error) {
			return gw.CompleteCycle(r.Context(), id(r))
		}))
	r.Post("/cycles/{id}/cancel", action(toasts, http.StatusOK, "Cikli u anulua",
		func(r *http.Request) (*models.Cycle, error) {
			return gw.CancelCycle(r.Context(), id(r))
		}))
}
