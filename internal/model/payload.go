package model

import (
	"net/url"
	"strconv"
	"time"
)

// LoginPayload is the credential pair sent to POST /users/login.
type LoginPayload struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// AddUserPayload creates a new account via POST /users/adduser.
type AddUserPayload struct {
	Name     string `json:"name" validate:"required"`
	CID      string `json:"cid" validate:"required,len=11"`
	Phone    string `json:"phone" validate:"required,min=8,max=11"`
	Role     Role   `json:"role,omitempty" validate:"omitempty,oneof=super_admin dzongkhag_admin gewog_operator meter_reader technician quality_inspector financial_officer viewer consumer"`
	Password string `json:"password,omitempty" validate:"omitempty,password"`
}

// UpdateUserPayload patches an account. Zero fields are left untouched by
// the backend.
type UpdateUserPayload struct {
	Name     string `json:"name,omitempty"`
	CID      string `json:"cid,omitempty" validate:"omitempty,len=11"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,min=8,max=11"`
	Role     Role   `json:"role,omitempty" validate:"omitempty,oneof=super_admin dzongkhag_admin gewog_operator meter_reader technician quality_inspector financial_officer viewer consumer"`
	Password string `json:"password,omitempty" validate:"omitempty,password"`
}

// DzongkhagPayload is the create/update body for /dzongkhag.
type DzongkhagPayload struct {
	Name           string       `json:"name,omitempty" validate:"required"`
	NameInDzongkha string       `json:"nameInDzongkha,omitempty"`
	Code           string       `json:"code,omitempty" validate:"required"`
	Region         Region       `json:"region,omitempty" validate:"required,oneof=Western Central Southern Eastern"`
	Area           *float64     `json:"area" validate:"omitempty,gte=0"`
	Population     *int         `json:"population" validate:"omitempty,gte=0"`
	Coordinates    *Coordinates `json:"coordinates,omitempty"`
}

// GewogPayload is the create/update body for /gewog. The parent dzongkhag is
// always sent as a bare id.
type GewogPayload struct {
	Name           string       `json:"name,omitempty" validate:"required"`
	NameInDzongkha string       `json:"nameInDzongkha,omitempty"`
	Dzongkhag      string       `json:"dzongkhag,omitempty" validate:"required"`
	Area           *float64     `json:"area" validate:"omitempty,gte=0"`
	Population     *int         `json:"population" validate:"omitempty,gte=0"`
	Coordinates    *Coordinates `json:"coordinates,omitempty"`
}

// ConsumerAddressPayload is the normalized address sub-object: bare gewog id
// plus the free-text fields.
type ConsumerAddressPayload struct {
	Gewog       string `json:"gewog" validate:"required"`
	Village     string `json:"village"`
	HouseNumber string `json:"houseNumber"`
}

// ConsumerPayload is the create/update body for /consumer. Relations are
// bare ids; connectionDate uses the wire date format (2006-01-02).
type ConsumerPayload struct {
	HouseholdID    string                 `json:"householdId" validate:"required"`
	HouseholdHead  string                 `json:"householdHead" validate:"required"`
	Address        ConsumerAddressPayload `json:"address"`
	FamilySize     int                    `json:"familySize" validate:"gte=1"`
	ConnectionType ConnectionType         `json:"connectionType" validate:"required,oneof=Individual Shared Community_Standpost"`
	MeterNumber    string                 `json:"meterNumber"`
	ConnectionDate string                 `json:"connectionDate,omitempty"`
	Status         ConsumerStatus         `json:"status,omitempty" validate:"omitempty,oneof=Active Suspended Disconnected"`
	TariffCategory TariffCategory         `json:"tariffCategory" validate:"required,oneof=Domestic Commercial Industrial Institutional"`
}

// ConsumerListParams are the filters supported by GET /consumer.
type ConsumerListParams struct {
	Page           int
	Limit          int
	Search         string
	Status         ConsumerStatus
	TariffCategory TariffCategory
	Gewog          string
	SortBy         string
	Order          string // "asc" or "desc"
}

// Query renders the params as query values, omitting unset fields.
func (p ConsumerListParams) Query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Status != "" {
		q.Set("status", string(p.Status))
	}
	if p.TariffCategory != "" {
		q.Set("tariffCategory", string(p.TariffCategory))
	}
	if p.Gewog != "" {
		q.Set("gewog", p.Gewog)
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.Order != "" {
		q.Set("order", p.Order)
	}
	return q
}

// WireDate is the date format the backend expects for connectionDate.
const WireDate = "2006-01-02"

// NormalizeWireDate coerces a date-ish string (RFC3339 timestamp or already
// short date) to the wire date format. Unparseable input passes through for
// the backend to reject.
func NormalizeWireDate(s string) string {
	if s == "" {
		return ""
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(WireDate)
	}
	if len(s) >= len(WireDate) {
		if t, err := time.Parse(WireDate, s[:len(WireDate)]); err == nil {
			return t.Format(WireDate)
		}
	}
	return s
}
