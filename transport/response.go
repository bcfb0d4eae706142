package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/account-service/constant"
	"github.com/muhammadheryan/account-service/utils/errors"
)

// Response is the envelope of every JSON reply.
type Response struct {
	Success bool        `json:"success"`
	Code    string      `json:"code"`
	Kind    string      `json:"kind"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	ok := errors.SetCustomError(constant.Successful)
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Code:    ok.ErrorCode(),
		Kind:    ok.Kind(),
		Message: ok.Error(),
		Data:    data,
	})
}

// writeError renders err as a CustomError. Anything else is reported as internal.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		ce = errors.SetCustomError(constant.ErrInternal)
	}
	status := ce.ErrorHTTPCode()
	if status == 0 {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, Response{
		Success: false,
		Code:    ce.ErrorCode(),
		Kind:    ce.Kind(),
		Message: ce.Error(),
	})
}
