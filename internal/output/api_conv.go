package output

import (
	"goprop-core/rank"
	"goprop/pkg/api"
)

// ToAPI converts a ranked entry to its wire form.
func ToAPI(e rank.Entry) api.ClassCountV1 {
	return api.ClassCountV1{ClassID: e.ClassID, Name: e.Name, GeneCount: e.Count}
}

func ToAPIList(list []rank.Entry) []api.ClassCountV1 {
	out := make([]api.ClassCountV1, len(list))
	for i, e := range list {
		out[i] = ToAPI(e)
	}
	return out
}
