// Package model holds the wire-level entities of the water utility registry.
// Field names follow the backend schema (_id, nameInDzongkha, ...); ids are
// opaque strings assigned by the backend.
package model

// Region groups dzongkhags into the four administrative regions.
type Region string

const (
	RegionWestern  Region = "Western"
	RegionCentral  Region = "Central"
	RegionSouthern Region = "Southern"
	RegionEastern  Region = "Eastern"
)

// Role is a user's authorization tier. Only RoleSuperAdmin may manage other
// user accounts; the check is applied at the command layer.
type Role string

const (
	RoleSuperAdmin       Role = "super_admin"
	RoleDzongkhagAdmin   Role = "dzongkhag_admin"
	RoleGewogOperator    Role = "gewog_operator"
	RoleMeterReader      Role = "meter_reader"
	RoleTechnician       Role = "technician"
	RoleQualityInspector Role = "quality_inspector"
	RoleFinancialOfficer Role = "financial_officer"
	RoleViewer           Role = "viewer"
	RoleConsumer         Role = "consumer"
)

type ConnectionType string

const (
	ConnectionIndividual         ConnectionType = "Individual"
	ConnectionShared             ConnectionType = "Shared"
	ConnectionCommunityStandpost ConnectionType = "Community_Standpost"
)

type ConsumerStatus string

const (
	StatusActive       ConsumerStatus = "Active"
	StatusSuspended    ConsumerStatus = "Suspended"
	StatusDisconnected ConsumerStatus = "Disconnected"
)

type TariffCategory string

const (
	TariffDomestic      TariffCategory = "Domestic"
	TariffCommercial    TariffCategory = "Commercial"
	TariffIndustrial    TariffCategory = "Industrial"
	TariffInstitutional TariffCategory = "Institutional"
)

// Coordinates may arrive with either value missing; the UI tolerates it as a
// degraded state, so both sides are pointers.
type Coordinates struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Dzongkhag is an administrative district. Code is unique among dzongkhags
// (enforced by the backend, not pre-checked here).
type Dzongkhag struct {
	ID             string       `json:"_id"`
	Name           string       `json:"name"`
	NameInDzongkha string       `json:"nameInDzongkha"`
	Code           string       `json:"code"`
	Region         Region       `json:"region"`
	Area           *float64     `json:"area"`
	Population     *int         `json:"population"`
	Coordinates    *Coordinates `json:"coordinates,omitempty"`
	CreatedAt      string       `json:"createdAt,omitempty"`
	UpdatedAt      string       `json:"updatedAt,omitempty"`
}

// Gewog is a sub-district. It always belongs to exactly one dzongkhag; the
// reference may be a bare id or an embedded document depending on endpoint.
type Gewog struct {
	ID             string       `json:"_id"`
	Name           string       `json:"name"`
	NameInDzongkha string       `json:"nameInDzongkha"`
	Dzongkhag      DzongkhagRef `json:"dzongkhag"`
	Area           *float64     `json:"area"`
	Population     *int         `json:"population"`
	Coordinates    *Coordinates `json:"coordinates,omitempty"`
}

// User is an account in the system. Passwords are write-only and live in the
// payload types, never here.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	CID   string `json:"cid"`
	Phone string `json:"phone,omitempty"`
	Role  Role   `json:"role,omitempty"`
}

// HouseholdHead is the embedded summary of a consumer's head user.
type HouseholdHead struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	CID   string `json:"cid"`
}

// GewogSummary is the embedded gewog inside a consumer address. Dzongkhag is
// only present when the backend populates two levels deep.
type GewogSummary struct {
	ID             string        `json:"_id"`
	Name           string        `json:"name"`
	NameInDzongkha string        `json:"nameInDzongkha"`
	Dzongkhag      *DzongkhagRef `json:"dzongkhag,omitempty"`
}

type Address struct {
	Gewog       GewogSummary `json:"gewog"`
	Village     string       `json:"village"`
	HouseNumber string       `json:"houseNumber"`
}

// Consumer is a household utility account.
type Consumer struct {
	ID             string         `json:"_id"`
	HouseholdID    string         `json:"householdId"`
	HouseholdHead  HouseholdHead  `json:"householdHead"`
	Address        Address        `json:"address"`
	FamilySize     int            `json:"familySize"`
	ConnectionType ConnectionType `json:"connectionType"`
	MeterNumber    string         `json:"meterNumber"`
	ConnectionDate string         `json:"connectionDate"`
	Status         ConsumerStatus `json:"status"`
	TariffCategory TariffCategory `json:"tariffCategory"`
	CreatedAt      string         `json:"createdAt,omitempty"`
	UpdatedAt      string         `json:"updatedAt,omitempty"`
}

// Meta is the pagination block returned by the consumer list endpoint.
type Meta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}
