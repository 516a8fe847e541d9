package tools

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"strconv"

	"github.com/volkernhq/volkern-mcp/pkg/volkern"
)

// route maps a tool name to the Volkern API endpoint it drives. Path
// parameters are interpolated into the template in order and removed from
// the argument map; the remainder becomes the query string for GET
// requests and the JSON body for everything else.
type route struct {
	method     string
	template   string
	pathParams []string
}

var routes = map[string]route{
	"volkern_list_leads":           {method: http.MethodGet, template: "/leads"},
	"volkern_get_lead":             {method: http.MethodGet, template: "/leads/%s", pathParams: []string{"leadId"}},
	"volkern_create_lead":          {method: http.MethodPost, template: "/leads"},
	"volkern_update_lead":          {method: http.MethodPatch, template: "/leads/%s", pathParams: []string{"leadId"}},
	"volkern_check_disponibilidad": {method: http.MethodGet, template: "/citas/disponibilidad"},
	"volkern_list_citas":           {method: http.MethodGet, template: "/citas"},
	"volkern_create_cita":          {method: http.MethodPost, template: "/citas"},
	"volkern_update_cita":          {method: http.MethodPatch, template: "/citas/%s", pathParams: []string{"citaId"}},
	"volkern_cita_accion":          {method: http.MethodPost, template: "/citas/accion"},
	"volkern_list_servicios":       {method: http.MethodGet, template: "/servicios"},
	"volkern_get_servicio":         {method: http.MethodGet, template: "/servicios/%s", pathParams: []string{"servicioId"}},
	"volkern_create_task":          {method: http.MethodPost, template: "/leads/%s/tasks", pathParams: []string{"leadId"}},
	"volkern_list_tasks":           {method: http.MethodGet, template: "/leads/%s/tasks", pathParams: []string{"leadId"}},
	"volkern_update_task":          {method: http.MethodPatch, template: "/tasks/%s", pathParams: []string{"taskId"}},
	"volkern_send_mensaje":         {method: http.MethodPost, template: "/mensajes/enviar"},
	"volkern_list_conversaciones":  {method: http.MethodGet, template: "/mensajes/conversaciones"},
	"volkern_log_interaction":      {method: http.MethodPost, template: "/leads/%s/interactions", pathParams: []string{"leadId"}},
	"volkern_list_interactions":    {method: http.MethodGet, template: "/leads/%s/interactions", pathParams: []string{"leadId"}},
	"volkern_add_note":             {method: http.MethodPost, template: "/leads/%s/notes", pathParams: []string{"leadId"}},
	"volkern_list_notes":           {method: http.MethodGet, template: "/leads/%s/notes", pathParams: []string{"leadId"}},
}

// HasRoute reports whether a tool name has an endpoint mapping.
func HasRoute(name string) bool {
	_, ok := routes[name]
	return ok
}

// BuildRequestSpec translates a tool invocation into the single API
// request it performs. The function is pure: the caller's argument map is
// never modified.
func BuildRequestSpec(name string, args map[string]any) (volkern.RequestSpec, error) {
	rt, ok := routes[name]
	if !ok {
		return volkern.RequestSpec{}, fmt.Errorf("no route registered for tool %s", name)
	}

	residual := map[string]any{}
	if args != nil {
		residual = maps.Clone(args)
	}

	pathValues := make([]any, 0, len(rt.pathParams))
	for _, param := range rt.pathParams {
		id, ok := residual[param].(string)
		if !ok || id == "" {
			return volkern.RequestSpec{}, fmt.Errorf("%s parameter is required and must be a non-empty string", param)
		}
		delete(residual, param)
		pathValues = append(pathValues, url.PathEscape(id))
	}

	// An explicit null argument behaves exactly like an absent one:
	// neither is sent to the API.
	for key, value := range residual {
		if value == nil {
			delete(residual, key)
		}
	}

	spec := volkern.RequestSpec{
		Path:   fmt.Sprintf(rt.template, pathValues...),
		Method: rt.method,
	}

	if rt.method == http.MethodGet {
		query := make(map[string]string, len(residual))
		for key, value := range residual {
			query[key] = queryValue(value)
		}
		spec.Query = query
		return spec, nil
	}

	spec.Body = residual
	return spec, nil
}

// queryValue renders an argument for query-string placement. Scalars use
// their plain textual form (2, not 2.0); anything else is JSON-encoded.
func queryValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case json.Number:
		return v.String()
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}
