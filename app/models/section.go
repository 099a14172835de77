package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SectionKind string

const (
	SectionKindHeroBanner       SectionKind = "hero_banner"
	SectionKindFeaturedProducts SectionKind = "featured_products"
	SectionKindFeaturedBundles  SectionKind = "featured_bundles"
	SectionKindCategoryGrid     SectionKind = "category_grid"
	SectionKindRichText         SectionKind = "rich_text"
)

// Section is one admin-authored block of the storefront homepage.
type Section struct {
	ID       string      `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Title    string      `gorm:"size:255;not null" json:"title"`
	Subtitle string      `gorm:"size:255" json:"subtitle"`
	Kind     SectionKind `gorm:"size:30;not null" json:"kind"`
	Position int         `gorm:"default:0" json:"position"`
	IsActive bool        `gorm:"default:true" json:"is_active"`
	ImageURL string      `gorm:"size:500" json:"image_url"`
	LinkURL  string      `gorm:"size:500" json:"link_url"`
	Body     string      `gorm:"type:text" json:"body"`

	Products []Product `gorm:"many2many:section_products;" json:"products,omitempty"`
	Bundles  []Bundle  `gorm:"many2many:section_bundles;" json:"bundles,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *Section) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
