// Package httpkit provides HTTP utilities including the capability model.
package httpkit

// Capability is a typed permission resolved once at authentication time.
// Handlers consume capabilities via simple lookups instead of probing the
// shape of a loosely-typed permission object on every check.
type Capability string

const (
	// CapViewInterviews allows reading the interview collection and counts.
	CapViewInterviews Capability = "interviews.view"
	// CapManageInterviews allows creating and updating interview records.
	CapManageInterviews Capability = "interviews.manage"
	// CapResolveReassignments allows approving and rejecting reassignment requests.
	CapResolveReassignments Capability = "reassignments.resolve"
	// CapRequestReassignments allows filing a reassignment request.
	CapRequestReassignments Capability = "reassignments.request"
	// CapManageTaxonomy allows triggering taxonomy refreshes.
	CapManageTaxonomy Capability = "taxonomy.manage"
)

// CapabilitySet is the resolved set of capabilities for one identity.
type CapabilitySet map[Capability]struct{}

// Has reports whether the set contains the capability.
func (s CapabilitySet) Has(cap Capability) bool {
	_, ok := s[cap]
	return ok
}

// roleGrants maps a JWT role claim to the capabilities it grants.
var roleGrants = map[string][]Capability{
	"admin": {
		CapViewInterviews, CapManageInterviews,
		CapResolveReassignments, CapRequestReassignments,
		CapManageTaxonomy,
	},
	"manager": {
		CapViewInterviews, CapManageInterviews,
		CapResolveReassignments, CapRequestReassignments,
	},
	"recruiter": {
		CapViewInterviews, CapManageInterviews, CapRequestReassignments,
	},
	"viewer": {
		CapViewInterviews,
	},
}

// ResolveCapabilities flattens role claims into a capability set.
// Unknown roles grant nothing; resolution happens once per request at auth
// time, after which handlers only do set lookups.
func ResolveCapabilities(roles []string) CapabilitySet {
	set := make(CapabilitySet)
	for _, role := range roles {
		for _, cap := range roleGrants[role] {
			set[cap] = struct{}{}
		}
	}
	return set
}
