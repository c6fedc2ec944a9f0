package ingestors

import (
	"strings"

	"mcp-monitoring/internal/models"
	"mcp-monitoring/internal/shared/ulid"

	"github.com/mileusna/useragent"
)

const (
	// PropertyUserAgent is the raw user agent a producer may attach to a log.
	PropertyUserAgent = "user_agent"
	// PropertyClient is the client family derived from PropertyUserAgent.
	PropertyClient = "client"
)

// CallLogNormalizer brings producer-supplied logs into their stored form.
type CallLogNormalizer interface {
	Normalize(log *models.CallLog)
}

type callLogNormalizer struct{}

func NewCallLogNormalizer() CallLogNormalizer {
	return &callLogNormalizer{}
}

// Normalize trims identifiers, stores the timestamp in UTC, assigns an id
// ordered by the call time when the producer sent none, drops blank property
// keys, and derives the client property.
func (n *callLogNormalizer) Normalize(log *models.CallLog) {
	log.ID = strings.TrimSpace(log.ID)
	log.ConnectionID = strings.TrimSpace(log.ConnectionID)
	log.VirtualEntityID = strings.TrimSpace(log.VirtualEntityID)
	log.ToolName = strings.TrimSpace(log.ToolName)
	log.ErrorMessage = strings.TrimSpace(log.ErrorMessage)
	log.Timestamp = log.Timestamp.UTC()

	if log.ID == "" {
		log.ID = ulid.NewULIDAt(log.Timestamp)
	}

	if len(log.Properties) > 0 {
		props := make(map[string]string, len(log.Properties))
		for k, v := range log.Properties {
			if k = strings.TrimSpace(k); k != "" {
				props[k] = strings.TrimSpace(v)
			}
		}
		log.Properties = props
	}

	if ua := log.Properties[PropertyUserAgent]; ua != "" {
		if _, ok := log.Properties[PropertyClient]; !ok {
			log.Properties[PropertyClient] = n.clientFamily(ua)
		}
	}
}

// clientFamily parses the user agent to extract the family, or returns it as
// is when no family is recognized.
func (n *callLogNormalizer) clientFamily(ua string) string {
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}
