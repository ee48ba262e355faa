package dnsrecord

// Field names under the add-time convention, used only by dnsrecord_add.
const (
	fieldAPartIPAddress    = "a_part_ip_address"
	fieldAAAAPartIPAddress = "aaaa_part_ip_address"
)

// Field names under the storage convention, used by dnsrecord_mod,
// dnsrecord_del and in find results.
const (
	fieldARecord    = "arecord"
	fieldAAAARecord = "aaaarecord"
)

// AddFields maps the desired record to the field convention the
// API expects at record creation, which differs from the storage
// convention used everywhere else.
func AddFields(desired Desired) (fields map[string]string) {
	switch desired.Type {
	case A:
		return map[string]string{fieldAPartIPAddress: desired.IP.String()}
	case AAAA:
		return map[string]string{fieldAAAAPartIPAddress: desired.IP.String()}
	default:
		return map[string]string{}
	}
}

// StorageFields maps the desired record to the storage field
// convention used by modify and delete operations and returned
// by find.
func StorageFields(desired Desired) (fields map[string]string) {
	switch desired.Type {
	case A:
		return map[string]string{fieldARecord: desired.IP.String()}
	case AAAA:
		return map[string]string{fieldAAAARecord: desired.IP.String()}
	default:
		return map[string]string{}
	}
}
