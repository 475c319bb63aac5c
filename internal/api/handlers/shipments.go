package handlers

import (
	"kamion-client/internal/ports"
	"kamion-client/internal/services"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// ShipmentHandler exposes the read-only shipment list.
type ShipmentHandler struct {
	Repo ports.ShipmentRepository
}

func (h *ShipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	q := r.URL.Query()

	var req services.ListShipmentsRequest
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"filter[id]", &req.FilterID},
		{"page", &req.Page},
		{"per_page", &req.PerPage},
	} {
		raw := q.Get(f.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusUnprocessableEntity, codeValidation, f.name+" must be a positive integer")
			return
		}
		*f.dst = n
	}

	if req.PerPage > services.MaxPerPage {
		writeError(w, r, http.StatusUnprocessableEntity, codeValidation, "per_page must be at most 100")
		return
	}

	res, err := services.ListShipments(r.Context(), req, h.Repo)
	if err != nil {
		zap.L().Error("list shipments failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, codeInternal, "internal server error")
		return
	}

	writeData(w, r, res.Shipments, &res.Meta)
}
