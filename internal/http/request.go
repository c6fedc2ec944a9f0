package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"mcp-monitoring/internal/monitoring"
	"mcp-monitoring/internal/shared/svcerrors"
)

const maxJSONBodyBytes = 1 << 20

// decodeJSON reads a JSON request body of at most maxJSONBodyBytes into v.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return errInvalidRequest("empty request body", nil)
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxJSONBodyBytes+1))
	if err != nil {
		return errInvalidRequest("failed to read request body", err)
	}
	if len(body) > maxJSONBodyBytes {
		return errInvalidRequest("request body too large: must be <= 1MB", nil)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errInvalidRequest("invalid json body", err)
	}
	return nil
}

// writeJSON encodes v before touching the response, so an encoding failure
// can still be reported through the error adapter.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return svcerrors.NewInternalErrorUndefined(err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
	return nil
}

// selectionFromQuery reads the log selection shared by the monitoring
// endpoints. connectionId and agentId may repeat or hold comma separated ids.
func selectionFromQuery(q url.Values) monitoring.Selection {
	return monitoring.Selection{
		Filters:       q.Get("filters"),
		ConnectionIDs: listParam(q, "connectionId"),
		AgentIDs:      listParam(q, "agentId"),
		ToolName:      strings.TrimSpace(q.Get("tool")),
	}
}

func listParam(q url.Values, name string) []string {
	var ids []string
	for _, v := range q[name] {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// intParam returns 0 for a missing parameter.
func intParam(q url.Values, name string) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errInvalidRequest(fmt.Sprintf("%s must be an integer", name), err)
	}
	return v, nil
}

// stringParam returns def for a missing parameter.
func stringParam(q url.Values, name, def string) string {
	if v := strings.TrimSpace(q.Get(name)); v != "" {
		return v
	}
	return def
}
