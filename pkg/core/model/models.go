package model

import "time"

// BloodGroup is the ABO group of a donor or a required transfusion.
type BloodGroup string

const (
	GroupA  BloodGroup = "A"
	GroupB  BloodGroup = "B"
	GroupAB BloodGroup = "AB"
	GroupO  BloodGroup = "O"
)

// Rh is the rhesus factor.
type Rh string

const (
	RhPositive Rh = "+"
	RhNegative Rh = "-"
)

// BloodType combines an ABO group with a rhesus factor, e.g. O-.
type BloodType struct {
	Group BloodGroup `json:"group" validate:"required,oneof=A B AB O"`
	Rh    Rh         `json:"rh" validate:"required,oneof=+ -"`
}

func (b BloodType) String() string {
	return string(b.Group) + string(b.Rh)
}

// ComponentType identifies what a blood unit contains.
type ComponentType string

const (
	ComponentWholeBlood ComponentType = "whole_blood"
	ComponentRedCells   ComponentType = "red_cells"
	ComponentPlasma     ComponentType = "plasma"
	ComponentPlatelets  ComponentType = "platelets"
)

// CampaignStatus is the lifecycle state of a donation campaign.
type CampaignStatus string

const (
	CampaignNotStarted CampaignStatus = "not_started"
	CampaignActive     CampaignStatus = "active"
	CampaignEnded      CampaignStatus = "ended"
	CampaignArchived   CampaignStatus = "archived"
)

// Campaign represents a blood donation campaign.
type Campaign struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Description         string         `json:"description"`
	Status              CampaignStatus `json:"status"`
	StartDate           time.Time      `json:"startDate"`
	EndDate             *time.Time     `json:"endDate,omitempty"`
	BloodCollectionDate *time.Time     `json:"bloodCollectionDate,omitempty"`
	Banner              string         `json:"banner,omitempty"`
	Location            string         `json:"location"`
	LimitDonation       int            `json:"limitDonation"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

// Donor holds the denormalized donor fields the API returns inline on a
// donation request.
type Donor struct {
	ID        string     `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Phone     string     `json:"phone,omitempty"`
	Email     string     `json:"email,omitempty"`
	BloodType *BloodType `json:"bloodType,omitempty"`
}

func (d Donor) FullName() string {
	if d.FirstName == "" {
		return d.LastName
	}
	return d.FirstName + " " + d.LastName
}

// DonationRequest is a donor's registration for a campaign appointment.
type DonationRequest struct {
	ID              string     `json:"id"`
	Donor           Donor      `json:"donor"`
	CampaignID      string     `json:"campaignId"`
	CampaignName    string     `json:"campaignName,omitempty"`
	AppointmentDate *time.Time `json:"appointmentDate,omitempty"`
	CurrentStatus   string     `json:"currentStatus"`
	Note            string     `json:"note,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// BloodUnitStatus is the inventory state of a stored unit.
type BloodUnitStatus string

const (
	UnitAvailable BloodUnitStatus = "available"
	UnitUsed      BloodUnitStatus = "used"
	UnitExpired   BloodUnitStatus = "expired"
	UnitDamaged   BloodUnitStatus = "damaged"
)

// BloodUnit is a stored unit of blood or a separated component.
type BloodUnit struct {
	ID              string          `json:"id"`
	MemberID        string          `json:"memberId"`
	MemberName      string          `json:"memberName,omitempty"`
	BloodType       BloodType       `json:"bloodType"`
	ComponentType   ComponentType   `json:"componentType"`
	TotalVolumeML   int             `json:"totalVolumeMl"`
	RemainingML     int             `json:"remainingVolumeMl"`
	IsSeparated     bool            `json:"isSeparated"`
	ParentWholeUnit string          `json:"parentWholeBlood,omitempty"`
	ExpiredDate     time.Time       `json:"expiredDate"`
	Status          BloodUnitStatus `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// BloodUnitAction is an append-only audit record attached to a blood unit.
type BloodUnitAction struct {
	ID            string    `json:"id"`
	BloodUnitID   string    `json:"bloodUnitId"`
	StaffID       string    `json:"staffId"`
	StaffName     string    `json:"staffName,omitempty"`
	Action        string    `json:"action"`
	Description   string    `json:"description,omitempty"`
	PreviousValue string    `json:"previousValue,omitempty"`
	NewValue      string    `json:"newValue,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// EmergencyRequest is an urgent blood request raised by a member or hospital.
type EmergencyRequest struct {
	ID               string        `json:"id"`
	RequestedBy      Donor         `json:"requestedBy"`
	BloodType        BloodType     `json:"bloodType"`
	ComponentType    ComponentType `json:"bloodTypeComponent"`
	RequiredVolumeML int           `json:"requiredVolumeMl"`
	Status           string        `json:"status"`
	Description      string        `json:"description,omitempty"`
	RejectionReason  string        `json:"rejectionReason,omitempty"`
	StartDate        time.Time     `json:"startDate"`
	EndDate          *time.Time    `json:"endDate,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// EmergencyRequestLog is one entry in an emergency request's action log.
type EmergencyRequestLog struct {
	ID            string    `json:"id"`
	RequestID     string    `json:"emergencyRequestId"`
	StaffID       string    `json:"staffId"`
	StaffName     string    `json:"staffName,omitempty"`
	Action        string    `json:"action"`
	Note          string    `json:"note,omitempty"`
	PreviousValue string    `json:"previousValue,omitempty"`
	NewValue      string    `json:"newValue,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TemplateItemType is the input kind of a result-template item.
type TemplateItemType string

const (
	ItemText   TemplateItemType = "text"
	ItemNumber TemplateItemType = "number"
	ItemSelect TemplateItemType = "select"
	ItemRadio  TemplateItemType = "radio"
)

// TemplateItem is one typed field of a donation result template.
type TemplateItem struct {
	ID          string           `json:"id"`
	Key         string           `json:"key"`
	Label       string           `json:"label"`
	Type        TemplateItemType `json:"type"`
	Required    bool             `json:"required"`
	Options     []string         `json:"options,omitempty"`
	MinValue    *float64         `json:"minValue,omitempty"`
	MaxValue    *float64         `json:"maxValue,omitempty"`
	MaxLength   int              `json:"maxLength,omitempty"`
	Description string           `json:"description,omitempty"`
	SortOrder   int              `json:"sortOrder"`
}

// DonationResultTemplate is a named, versioned form schema for test results.
type DonationResultTemplate struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Version   int            `json:"version"`
	Active    bool           `json:"active"`
	Items     []TemplateItem `json:"items"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// DonationResult carries the blood test results of a completed donation.
type DonationResult struct {
	ID                string            `json:"id"`
	DonationRequestID string            `json:"donationRequestId"`
	TemplateID        string            `json:"templateId"`
	ResultData        map[string]string `json:"resultData"`
	Notes             string            `json:"notes,omitempty"`
	ProcessedBy       string            `json:"processedBy,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// BlogStatus is the publication state of a blog post.
type BlogStatus string

const (
	BlogDraft     BlogStatus = "draft"
	BlogPublished BlogStatus = "published"
	BlogArchived  BlogStatus = "archived"
)

// Blog is a content post shown on the public site.
type Blog struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Excerpt   string     `json:"excerpt,omitempty"`
	ImageURL  string     `json:"imageUrl,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	Status    BlogStatus `json:"status"`
	Slug      string     `json:"slug"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Role is the dashboard area a signed-in account belongs to.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleStaff  Role = "staff"
	RoleDoctor Role = "doctor"
)

// Account is the identity-provider account linked to a profile.
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// StaffProfile is the profile of a staff or doctor account.
type StaffProfile struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Avatar    string    `json:"avatar,omitempty"`
	Account   Account   `json:"account"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AdminProfile is the profile of an admin account.
type AdminProfile struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Avatar    string    `json:"avatar,omitempty"`
	Account   Account   `json:"account"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DashboardStats is the aggregate counters shown on the landing screen.
type DashboardStats struct {
	TotalCampaigns         int                   `json:"totalCampaigns"`
	ActiveCampaigns        int                   `json:"activeCampaigns"`
	TotalDonations         int                   `json:"totalDonations"`
	CompletedDonations     int                   `json:"completedDonations"`
	AvailableBloodUnits    int                   `json:"availableBloodUnits"`
	PendingEmergencies     int                   `json:"pendingEmergencyRequests"`
	TotalMembers           int                   `json:"totalMembers"`
	DonationsThisMonth     int                   `json:"donationsThisMonth"`
	BloodVolumeByComponent map[ComponentType]int `json:"bloodVolumeByComponent,omitempty"`
}

// Meta is the pagination metadata nested inside list responses.
type Meta struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	Total           int  `json:"total"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// Page is one page of a list endpoint's results.
type Page[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}
