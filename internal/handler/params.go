package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Path and query parameters are bound with the oapi-codegen runtime, the same
// binder generated servers use, so style and escaping follow openapi.yaml.

func pathOptions() runtime.BindStyledParameterOptions {
	return runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	}
}

// accountIDParam binds the {accountId} path parameter.
func accountIDParam(r *http.Request) (uuid.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "accountId", chi.URLParam(r, "accountId"), &id, pathOptions())
	return id, err
}

// stringPathParam binds a string path parameter, undoing percent-encoding.
func stringPathParam(r *http.Request, name string) (string, error) {
	var v string
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &v, pathOptions())
	return v, err
}

// daysParam binds the required ?days= query parameter.
func daysParam(r *http.Request) (int, error) {
	var days int
	err := runtime.BindQueryParameter("form", true, true, "days", r.URL.Query(), &days)
	return days, err
}

// downloadParam binds the optional ?download= query parameter.
func downloadParam(r *http.Request) (bool, error) {
	var download *bool
	if err := runtime.BindQueryParameter("form", true, false, "download", r.URL.Query(), &download); err != nil {
		return false, err
	}
	return download != nil && *download, nil
}
