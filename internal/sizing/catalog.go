package sizing

// InstanceSpec describes one search instance tier.
type InstanceSpec struct {
	Name        string  `json:"name" yaml:"name"`
	RAMGigs     int     `json:"ram_gigs" yaml:"ram_gigs"`
	StorageGigs int     `json:"storage_gigs" yaml:"storage_gigs"`
	VCPU        int     `json:"vCPU" yaml:"vCPU"`
	PriceHr     float64 `json:"price_hr" yaml:"price_hr"`
}

// catalog lists the available tiers smallest first. Every tier grows in all
// three resource dimensions, so the first entry that fits is also the
// smallest that fits; TestCatalog_Monotonic pins that invariant.
var catalog = []InstanceSpec{
	{Name: "S20", RAMGigs: 4, StorageGigs: 80, VCPU: 2, PriceHr: 0.16},
	{Name: "S30", RAMGigs: 8, StorageGigs: 161, VCPU: 4, PriceHr: 0.33},
	{Name: "S40", RAMGigs: 16, StorageGigs: 322, VCPU: 8, PriceHr: 0.68},
	{Name: "S50", RAMGigs: 32, StorageGigs: 644, VCPU: 16, PriceHr: 1.40},
	{Name: "S60", RAMGigs: 64, StorageGigs: 1288, VCPU: 32, PriceHr: 2.52},
	{Name: "S70", RAMGigs: 96, StorageGigs: 1932, VCPU: 48, PriceHr: 3.57},
	{Name: "S80", RAMGigs: 128, StorageGigs: 2576, VCPU: 64, PriceHr: 4.66},
}

// Catalog returns a copy of the instance catalog, ordered smallest tier
// first.
func Catalog() []InstanceSpec {
	out := make([]InstanceSpec, len(catalog))
	copy(out, catalog)
	return out
}

// SelectInstance returns the smallest catalog instance whose RAM, vCPU and
// storage each meet or exceed the given totals. The second return value is
// false when no tier is large enough.
func SelectInstance(ramGB float64, vcpu int, storageGB float64) (InstanceSpec, bool) {
	for _, inst := range catalog {
		if float64(inst.RAMGigs) >= ramGB &&
			inst.VCPU >= vcpu &&
			float64(inst.StorageGigs) >= storageGB {
			return inst, true
		}
	}
	return InstanceSpec{}, false
}
