package app

import (
	"fmt"

	"github.com/invopop/jsonschema"

	"lab-dashboard/internal/core"
	"lab-dashboard/internal/dashboards/business"
	"lab-dashboard/internal/dashboards/research"
	"lab-dashboard/internal/details/contract"
	"lab-dashboard/internal/details/equipment"
	"lab-dashboard/internal/details/experiment"
	"lab-dashboard/internal/view"
)

// Unions lists the variant unions by the name the API and CLI use for them.
var Unions = []string{"business", "research", "equipment", "contract", "experiment"}

// UnionSchema holds the JSON schema of every member payload of a union,
// keyed by kind. Encoded variants carry these payloads under "data".
type UnionSchema struct {
	Union   string                        `json:"union"`
	Kinds   []string                      `json:"kinds"`
	Members map[string]*jsonschema.Schema `json:"members"`
}

// Schema returns the member schemas of the named union.
func Schema(union string) (*UnionSchema, error) {
	switch union {
	case "business":
		return schemaOf[business.Kind](union, business.Members()), nil
	case "research":
		return schemaOf[research.Kind](union, research.Members()), nil
	case "equipment":
		return schemaOf[equipment.Kind](union, equipment.Members()), nil
	case "contract":
		return schemaOf[contract.Kind](union, contract.Members()), nil
	case "experiment":
		return schemaOf[experiment.Kind](union, experiment.Members()), nil
	}
	return nil, fmt.Errorf("schema %q: %w", union, core.ErrNotFound)
}

func schemaOf[K ~string, V view.Variant[K]](union string, members []V) *UnionSchema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	out := &UnionSchema{Union: union, Members: make(map[string]*jsonschema.Schema, len(members))}
	for _, m := range members {
		kind := string(m.Kind())
		out.Kinds = append(out.Kinds, kind)
		out.Members[kind] = reflector.Reflect(m)
	}
	return out
}
