package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/robsonek/cosmic-survivors-sub000/internal/arsenal"
	"github.com/robsonek/cosmic-survivors-sub000/internal/render"
)

// Handler methods for routerHandlers.
// These are used by both the standalone router (for testing) and the full Server.

// maxRegisterBodySize bounds the weapon-definition payload.
const maxRegisterBodySize = 16 * 1024

func (h *routerHandlers) handleGetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.arena.GetSnapshot())
}

func (h *routerHandlers) handleGetStats(w http.ResponseWriter, r *http.Request) {
	stats := h.arena.GetStats()
	writeJSON(w, map[string]interface{}{
		"arena":    stats,
		"eventLog": h.arena.EventLogStats(),
	})
}

func (h *routerHandlers) handleGetWeapons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.arena.CatalogDefinitions())
}

// weaponRequest is the shared body shape for the weapon management calls.
type weaponRequest struct {
	ID string `json:"id"`
}

func decodeWeaponRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req weaponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return "", false
	}
	if req.ID == "" {
		writeError(w, "Weapon id is required", http.StatusBadRequest)
		return "", false
	}
	return req.ID, true
}

func (h *routerHandlers) handleWeaponAdd(w http.ResponseWriter, r *http.Request) {
	id, ok := decodeWeaponRequest(w, r)
	if !ok {
		return
	}
	if !h.arena.AddWeapon(id) {
		writeError(w, "Cannot add weapon: unknown id or arsenal full", http.StatusConflict)
		return
	}
	writeJSON(w, map[string]string{"status": "ok", "id": id})
}

func (h *routerHandlers) handleWeaponUpgrade(w http.ResponseWriter, r *http.Request) {
	id, ok := decodeWeaponRequest(w, r)
	if !ok {
		return
	}
	if !h.arena.UpgradeWeapon(id) {
		writeError(w, "Cannot upgrade weapon: not owned or at max level", http.StatusConflict)
		return
	}
	writeJSON(w, map[string]string{"status": "ok", "id": id})
}

func (h *routerHandlers) handleWeaponRemove(w http.ResponseWriter, r *http.Request) {
	id, ok := decodeWeaponRequest(w, r)
	if !ok {
		return
	}
	if !h.arena.RemoveWeapon(id) {
		writeError(w, "Cannot remove weapon: not owned", http.StatusConflict)
		return
	}
	writeJSON(w, map[string]string{"status": "ok", "id": id})
}

// handleWeaponRegister registers an evolved/custom weapon definition. The
// behaviorConfig bag is decoded into the typed union; unknown behavior
// types are rejected.
func (h *routerHandlers) handleWeaponRegister(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRegisterBodySize))
	if err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	def, err := arsenal.ParseDefinition(body)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.arena.RegisterWeapon(def)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"status": "registered", "id": def.ID})
}

// handleGetFrame renders the latest snapshot to a debug PNG.
func (h *routerHandlers) handleGetFrame(w http.ResponseWriter, r *http.Request) {
	snap := h.arena.GetSnapshot()

	start := time.Now()
	w.Header().Set("Content-Type", "image/png")
	if err := render.WritePNG(w, snap); err != nil {
		// Headers already sent; just log
		log.Printf("⚠️ Frame render error: %v", err)
		return
	}
	RecordFrameRender(time.Since(start))
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
