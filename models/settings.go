package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Address struct {
	Street   string `json:"street" bson:"street" form:"street"`
	City     string `json:"city" bson:"city" form:"city"`
	State    string `json:"state" bson:"state" form:"state"`
	ZipCode  string `json:"zipCode" bson:"zipCode" form:"zipCode"`
	Country  string `json:"country" bson:"country" form:"country"`
	TimeZone string `json:"timeZone" bson:"timeZone" form:"timeZone"`
}

type DoctorReview struct {
	Title         string  `json:"title" bson:"title"`
	Description   string  `json:"description" bson:"description"`
	Rating        float64 `json:"rating" bson:"rating"`
	ReviewerName  string  `json:"reviewerName" bson:"reviewerName"`
	ReviewerEmail string  `json:"reviewerEmail" bson:"reviewerEmail"`
}

type ScheduleSlot struct {
	Day       string `json:"day" bson:"day" binding:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"startTime" bson:"startTime"`
	EndTime   string `json:"endTime" bson:"endTime"`
}

// Doctor is the single practitioner profile shown across the back office.
type Doctor struct {
	ID             primitive.ObjectID   `json:"_id" bson:"_id,omitempty" form:"-"`
	IDNumber       string               `json:"idNumber" bson:"idNumber" form:"idNumber"`
	FName          string               `json:"fName" bson:"fName" form:"fName"`
	LName          string               `json:"lName" bson:"lName" form:"lName"`
	Email          string               `json:"email" bson:"email" form:"email"`
	Tel            string               `json:"tel" bson:"tel" form:"tel"`
	Company        string               `json:"company" bson:"company" form:"company"`
	CompanyWebsite string               `json:"companyWebsite" bson:"companyWebsite" form:"companyWebsite"`
	Specialty      string               `json:"specialty" bson:"specialty" form:"specialty"`
	Experience     string               `json:"experience" bson:"experience" form:"experience"`
	Address        Address              `json:"address" bson:"address"`
	Reviews        []DoctorReview       `json:"reviews" bson:"reviews" form:"-"`
	Schedule       []ScheduleSlot       `json:"schedule" bson:"schedule" form:"-"`
	Appointments   []primitive.ObjectID `json:"appointments" bson:"appointments" form:"-"`
	Clinic         primitive.ObjectID   `json:"clinic,omitempty" bson:"clinic,omitempty" form:"-"`
}

type Clinic struct {
	ID                primitive.ObjectID   `json:"_id" bson:"_id,omitempty" form:"-"`
	IDNumber          string               `json:"idNumber" bson:"idNumber" form:"idNumber" binding:"required"`
	Name              string               `json:"name" bson:"name" form:"clinicName"`
	Address           string               `json:"address" bson:"address" form:"clinicAddress"`
	Email             string               `json:"email" bson:"email" form:"clinicEmail"`
	Phone             string               `json:"phone" bson:"phone" form:"clinicPhone"`
	State             string               `json:"state" bson:"state" form:"state"`
	City              string               `json:"city" bson:"city" form:"city"`
	ClinicType        string               `json:"clinicType" bson:"clinicType" form:"clinicType"`
	ClinicMessage     string               `json:"clinicMessage" bson:"clinicMessage" form:"clinicMessage"`
	AltEmail          string               `json:"altEmail" bson:"altEmail" form:"altEmail"`
	UserName          string               `json:"userName" bson:"userName" form:"userName"`
	RegistrationEmail string               `json:"registrationEmail" bson:"registrationEmail" form:"registrationEmail"`
	Doctors           []primitive.ObjectID `json:"doctors" bson:"doctors" form:"-"`
	Appointments      []primitive.ObjectID `json:"appointments" bson:"appointments" form:"-"`
}

type SocialMedia struct {
	Facebook string `json:"facebook" bson:"facebook" form:"facebook"`
	Twitter  string `json:"twitter" bson:"twitter" form:"twitter"`
	LinkedIn string `json:"linkedIn" bson:"linkedIn" form:"linkedIn"`
}

type SocialMediaSettings struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	SocialMedia SocialMedia        `json:"socialMedia" bson:"socialMedia"`
}

// Photo records an uploaded doctor or clinic picture.
type Photo struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Path      string             `json:"path" bson:"path"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type UserPreferences struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Language       string             `json:"language" bson:"language"`
	Theme          string             `json:"theme" bson:"theme"`
	ThemeValue     string             `json:"themeValue" bson:"themeValue"`
	ThemeRtl       bool               `json:"themeRtl" bson:"themeRtl"`
	SidebarMini    bool               `json:"sidebarMini" bson:"sidebarMini"`
	Font           string             `json:"font" bson:"font"`
	HMenu          bool               `json:"h_menu" bson:"h_menu"`
	HeaderFixed    bool               `json:"headerFixed" bson:"headerFixed"`
	HeaderDarkMode bool               `json:"headerDarkMode" bson:"headerDarkMode"`
	BorderRadios   bool               `json:"borderRadios" bson:"borderRadios"`
	SidebarDark    bool               `json:"sidebarDark" bson:"sidebarDark"`
	CheckImage     bool               `json:"checkImage" bson:"checkImage"`
	Pic            string             `json:"pic" bson:"pic"`
	FluidLayout    bool               `json:"fluidLayout" bson:"fluidLayout"`
	CardShadow     bool               `json:"cardShadow" bson:"cardShadow"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// DefaultPreferences is what a fresh install starts with.
func DefaultPreferences() UserPreferences {
	return UserPreferences{Language: "en", FluidLayout: true}
}

// PreferencesForm is the settings panel. Booleans are only true when the
// literal "true" is posted.
type PreferencesForm struct {
	Theme          string `form:"theme"`
	ThemeValue     string `form:"themeValue"`
	Font           string `form:"font"`
	Pic            string `form:"pic"`
	ThemeRtl       string `form:"themeRtl"`
	HMenu          string `form:"h_menu"`
	HeaderFixed    string `form:"headerFixed"`
	HeaderDarkMode string `form:"headerDarkMode"`
	BorderRadios   string `form:"borderRadios"`
	SidebarDark    string `form:"sidebarDark"`
	CheckImage     string `form:"checkImage"`
	FluidLayout    string `form:"fluidLayout"`
	CardShadow     string `form:"cardShadow"`
}

// Account is the back-office login.
type Account struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username"`
	PasswordHash string             `json:"-" bson:"passwordHash"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

type LoginForm struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}
