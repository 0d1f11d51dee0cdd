package public

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/solvia-mx/solvia-services/api/internal/interfaces/http/common"
	publicapp "github.com/solvia-mx/solvia-services/api/internal/public/application"
)

// diagnosticCreateHandler receives a quiz submission, runs the engine and
// returns the stored result together with its public token.
func (h *Handler) diagnosticCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req diagnosticCreateRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			h.writeError(w, http.StatusBadRequest, "el formato de la solicitud no es válido")
			return
		}

		cmd, err := buildSubmitCommand(req)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		diagnostic, err := h.diagnosticCommands.Submit(ctx, cmd)
		if err != nil {
			h.logger.Printf("diagnostic submit failed: %v", err)
			h.writeError(w, http.StatusInternalServerError, "no pudimos guardar tu diagnóstico, intenta de nuevo")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, successResponse{
			Success: true,
			Data:    h.buildDiagnosticResponse(*diagnostic),
		})
	}
}

// diagnosticDetailHandler serves the result page lookup by public token.
func (h *Handler) diagnosticDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(chi.URLParam(r, "token"))
		if token == "" {
			h.writeError(w, http.StatusBadRequest, "el token no fue especificado")
			return
		}
		if _, err := uuid.Parse(token); err != nil {
			h.writeError(w, http.StatusBadRequest, "el token no es válido")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		diagnostic, err := h.diagnosticQueries.ByToken(ctx, token)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				h.writeError(w, http.StatusNotFound, "no encontramos un diagnóstico con ese token")
				return
			}
			h.logger.Printf("diagnostic detail fetch failed token=%s err=%v", token, err)
			h.writeError(w, http.StatusInternalServerError, "no pudimos recuperar tu diagnóstico")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, successResponse{
			Success: true,
			Data:    h.buildDiagnosticResponse(*diagnostic),
		})
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	common.WriteJSON(h.logger, w, status, errorResponse{Success: false, Error: message})
}

// buildSubmitCommand validates the payload structurally and canonicalises
// the quiz vocabulary. Unknown enum values are kept: the engine is total
// and scores them as zero instead of failing the request.
func buildSubmitCommand(req diagnosticCreateRequest) (publicapp.SubmitDiagnosticCommand, error) {
	if req.Answers == nil {
		return publicapp.SubmitDiagnosticCommand{}, errors.New("las respuestas del cuestionario son obligatorias")
	}
	if strings.TrimSpace(req.Answers.BusinessType) == "" {
		return publicapp.SubmitDiagnosticCommand{}, errors.New("el giro del negocio es obligatorio")
	}
	if strings.TrimSpace(req.Answers.DigitalMaturity) == "" {
		return publicapp.SubmitDiagnosticCommand{}, errors.New("el nivel de digitalización es obligatorio")
	}
	if strings.TrimSpace(req.Answers.CompanySize) == "" {
		return publicapp.SubmitDiagnosticCommand{}, errors.New("el tamaño de la empresa es obligatorio")
	}

	email, err := normalizeEmail(req.ContactEmail)
	if err != nil {
		return publicapp.SubmitDiagnosticCommand{}, err
	}

	return publicapp.SubmitDiagnosticCommand{
		ContactName:  strings.TrimSpace(req.ContactName),
		ContactEmail: email,
		Answers:      buildAnswers(*req.Answers),
	}, nil
}
