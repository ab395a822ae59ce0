package store

import "drukwater-admin/internal/model"

// ConsumerForm is the denormalized edit representation of a consumer: flat
// fields for the head user's read-only display, the address split out and
// the parent dzongkhag lifted up for cascading selection.
type ConsumerForm struct {
	ID                 string
	HouseholdID        string
	HouseholdHead      string // head user id
	HouseholdHeadName  string
	HouseholdHeadCID   string
	HouseholdHeadPhone string
	AddressDzongkhag   string // dzongkhag id; blank when not derivable
	AddressGewog       string // gewog id
	AddressVillage     string
	AddressHouseNumber string
	FamilySize         int
	ConnectionType     model.ConnectionType
	MeterNumber        string
	ConnectionDate     string
	Status             model.ConsumerStatus
	TariffCategory     model.TariffCategory
}

// EmptyConsumerForm is the blank form with the defaults a new record gets.
func EmptyConsumerForm() ConsumerForm {
	return ConsumerForm{
		FamilySize:     1,
		ConnectionType: model.ConnectionIndividual,
		Status:         model.StatusActive,
		TariffCategory: model.TariffDomestic,
	}
}

// FormFromConsumer populates an edit form from a normalized consumer. The
// parent dzongkhag is re-derived only when the backend embedded the gewog's
// dzongkhag two levels deep; otherwise the field starts blank and has to be
// reselected.
func FormFromConsumer(c model.Consumer) ConsumerForm {
	f := ConsumerForm{
		ID:                 c.ID,
		HouseholdID:        c.HouseholdID,
		HouseholdHead:      c.HouseholdHead.ID,
		HouseholdHeadName:  c.HouseholdHead.Name,
		HouseholdHeadCID:   c.HouseholdHead.CID,
		HouseholdHeadPhone: c.HouseholdHead.Phone,
		AddressGewog:       c.Address.Gewog.ID,
		AddressVillage:     c.Address.Village,
		AddressHouseNumber: c.Address.HouseNumber,
		FamilySize:         c.FamilySize,
		ConnectionType:     c.ConnectionType,
		MeterNumber:        c.MeterNumber,
		ConnectionDate:     c.ConnectionDate,
		Status:             c.Status,
		TariffCategory:     c.TariffCategory,
	}
	if ref := c.Address.Gewog.Dzongkhag; ref != nil {
		f.AddressDzongkhag = ref.ID
	}
	return f
}

// Payload flattens the form back to the normalized wire shape: bare-id
// relations, the address sub-object reassembled and connectionDate coerced
// to the wire date format. The lifted dzongkhag is selection state only and
// is not part of the wire address.
func (f ConsumerForm) Payload() model.ConsumerPayload {
	return model.ConsumerPayload{
		HouseholdID:   f.HouseholdID,
		HouseholdHead: f.HouseholdHead,
		Address: model.ConsumerAddressPayload{
			Gewog:       f.AddressGewog,
			Village:     f.AddressVillage,
			HouseNumber: f.AddressHouseNumber,
		},
		FamilySize:     f.FamilySize,
		ConnectionType: f.ConnectionType,
		MeterNumber:    f.MeterNumber,
		ConnectionDate: model.NormalizeWireDate(f.ConnectionDate),
		Status:         f.Status,
		TariffCategory: f.TariffCategory,
	}
}
