package user

// Capability is one resolved permission the authentication collaborator
// grants at token issue time. The engine branches on capability membership
// only, never on role names.
type Capability string

const (
	CapabilityViewOwnReports    Capability = "reports.view_own"
	CapabilityViewAllReports    Capability = "reports.view_all"
	CapabilityViewConsolidated  Capability = "reports.view_consolidated"
	CapabilitySubmitIdleReason  Capability = "idle.submit_reason"
	CapabilityManageIdleTickets Capability = "idle.manage_tickets"
)

// Capabilities is the resolved set carried in the access token.
type Capabilities []Capability

func (c Capabilities) Has(cap Capability) bool {
	for _, got := range c {
		if got == cap {
			return true
		}
	}
	return false
}

// CapabilitiesFromClaims reads the capability set out of decoded JWT claims.
// Missing or malformed claims yield an empty set, not an error; gating
// middleware treats that as no access.
func CapabilitiesFromClaims(claims map[string]interface{}) Capabilities {
	raw, ok := claims["capabilities"].([]interface{})
	if !ok {
		return nil
	}
	caps := make(Capabilities, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			caps = append(caps, Capability(s))
		}
	}
	return caps
}
