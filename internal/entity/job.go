package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DegreeLevel string

const (
	DegreeAssociate DegreeLevel = "associate"
	DegreeBachelors DegreeLevel = "bachelors"
	DegreeMasters   DegreeLevel = "masters"
	DegreePhD       DegreeLevel = "phd"
)

type WorkModel string

const (
	WorkModelRemote WorkModel = "remote"
	WorkModelOnSite WorkModel = "on-site"
	WorkModelHybrid WorkModel = "hybrid"
)

// Language is a spoken language required for a job, drawn from a fixed list.
type Language string

const (
	LangEnglish    Language = "english"
	LangFrench     Language = "french"
	LangSpanish    Language = "spanish"
	LangItalian    Language = "italian"
	LangArabic     Language = "arabic"
	LangJapanese   Language = "japanese"
	LangGerman     Language = "german"
	LangRussian    Language = "russian"
	LangPolish     Language = "polish"
	LangPortuguese Language = "portuguese"
	LangChinese    Language = "chinese"
	LangKorean     Language = "korean"
	LangDutch      Language = "dutch"
	LangHungarian  Language = "hungarian"
)

// Degree is the minimum degree required for a job, with an optional major.
type Degree struct {
	Level DegreeLevel `bson:"level" json:"level" validate:"required,oneof=associate bachelors masters phd"`
	Major string      `bson:"major,omitempty" json:"major,omitempty"`
}

// Job is a single job posting. ID and Created are assigned on insert;
// Updated stays nil until the first successful update.
type Job struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title" validate:"required"`
	Degree    Degree             `bson:"degree" json:"degree" validate:"required"`
	Desc      string             `bson:"desc" json:"desc" validate:"required"`
	Skills    []string           `bson:"skills" json:"skills" validate:"required,unique_list"`
	Lang      []Language         `bson:"lang" json:"lang" validate:"required,unique_list,dive,oneof=english french spanish italian arabic japanese german russian polish portuguese chinese korean dutch hungarian"`
	WorkModel WorkModel          `bson:"work_model" json:"work_model" validate:"required,oneof=remote on-site hybrid"`
	Created   time.Time          `bson:"created" json:"created"`
	Updated   *time.Time         `bson:"updated,omitempty" json:"updated,omitempty"`
}

// JobUpdate is a partial update to a stored job. Nil means "leave the stored
// field untouched"; a non-nil field fully replaces the stored value. Presence
// is tagged per field so an omitted field stays distinguishable from a zero
// value.
type JobUpdate struct {
	Title     *string    `json:"title,omitempty" validate:"omitempty,min=1"`
	Degree    *Degree    `json:"degree,omitempty"`
	Desc      *string    `json:"desc,omitempty"`
	Skills    []string   `json:"skills,omitempty" validate:"omitempty,unique_list"`
	Lang      []Language `json:"lang,omitempty" validate:"omitempty,unique_list,dive,oneof=english french spanish italian arabic japanese german russian polish portuguese chinese korean dutch hungarian"`
	WorkModel *WorkModel `json:"work_model,omitempty" validate:"omitempty,oneof=remote on-site hybrid"`
}

// IsEmpty reports whether the patch carries no fields at all. An empty patch
// skips the write entirely, so the update timestamp stays as it was.
func (u *JobUpdate) IsEmpty() bool {
	return u.Title == nil &&
		u.Degree == nil &&
		u.Desc == nil &&
		u.Skills == nil &&
		u.Lang == nil &&
		u.WorkModel == nil
}

// JobCollection wraps the list response so the top level is an object rather
// than a bare JSON array.
type JobCollection struct {
	Jobs []Job `json:"jobs"`
}
