package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser    = "USER"
	RoleAdmin   = "ADMIN"
	RoleCompany = "COMPANY"
)

const (
	JobTypeInternship = "INTERNSHIP"
	JobTypeFullTime   = "FULL_TIME"
	JobTypePartTime   = "PART_TIME"
)

const ApplicationPending = "PENDING"

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"           json:"id"`
	Email        string     `gorm:"uniqueIndex;not null"           json:"email"`
	PasswordHash string     `gorm:"not null"                       json:"-"`
	Name         string     `json:"name"`
	Role         string     `gorm:"not null;default:USER"          json:"role"`
	Skills       StringList `json:"skills"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type Company struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null"             json:"name"`
	LogoURL     string    `json:"logoUrl"`
	Website     string    `json:"website"`
	Description string    `json:"description"`
	IsPremium   bool      `gorm:"default:false"        json:"isPremium"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Job struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"              json:"id"`
	CompanyID       uuid.UUID  `gorm:"type:uuid;index;not null"          json:"companyId"`
	Company         *Company   `json:"company,omitempty"`
	Title           string     `gorm:"not null"                          json:"title"`
	Type            string     `gorm:"not null;default:INTERNSHIP"       json:"type"`
	Location        string     `gorm:"not null"                          json:"location"`
	Stipend         float64    `gorm:"default:0"                         json:"stipend"`
	Duration        string     `json:"duration"`
	TechStack       StringList `json:"techStack"`
	PrepGuide       string     `json:"prepGuide"`
	Deadline        time.Time  `gorm:"index;not null"                    json:"deadline"`
	ApplyLink       string     `json:"applyLink"`
	IsInternalApply bool       `json:"isInternalApply"`
	IsPPO           bool       `gorm:"default:false"                     json:"isPPO"`
	IsActive        bool       `gorm:"index"                             json:"isActive"`
	CreatedAt       time.Time  `gorm:"index"                             json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// Application rows are unique per (user, job); the composite index is the
// authoritative duplicate-apply guard, the handler check is a fast path.
type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"                        json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_job" json:"userId"`
	User        *User     `json:"user,omitempty"`
	JobID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_job" json:"jobId"`
	Job         *Job      `json:"job,omitempty"`
	Status      string    `gorm:"not null;default:PENDING"                    json:"status"`
	Answers     *string   `json:"answers,omitempty"`
	SubmittedAt time.Time `gorm:"index"                                       json:"submittedAt"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.SubmittedAt.IsZero() {
		a.SubmittedAt = time.Now()
	}
	return nil
}

type Event struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"     json:"id"`
	CompanyID            uuid.UUID  `gorm:"type:uuid;index;not null" json:"companyId"`
	Company              *Company   `json:"company,omitempty"`
	Title                string     `gorm:"not null"                 json:"title"`
	Description          string     `json:"description"`
	Location             string     `json:"location"`
	Mode                 string     `json:"mode"`
	Prize                string     `json:"prize"`
	Rounds               StringList `json:"rounds"`
	StartDate            time.Time  `json:"startDate"`
	EndDate              time.Time  `json:"endDate"`
	RegistrationDeadline time.Time  `json:"registrationDeadline"`
	IsActive             bool       `gorm:"index"                    json:"isActive"`
	CreatedAt            time.Time  `gorm:"index"                    json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

type Blog struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"     json:"id"`
	AuthorID    uuid.UUID  `gorm:"type:uuid;index;not null" json:"authorId"`
	Author      *User      `json:"author,omitempty"`
	Title       string     `gorm:"not null"                 json:"title"`
	Slug        string     `gorm:"uniqueIndex;not null"     json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	CoverImage  string     `json:"coverImage"`
	Tags        StringList `json:"tags"`
	PublishedAt *time.Time `gorm:"index"                    json:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// All returns every model the schema migrator needs to know about.
func All() []any {
	return []any{&User{}, &Company{}, &Job{}, &Application{}, &Event{}, &Blog{}}
}
