// Package branding centralizes user-facing product naming.
package branding

// AppName is the product name rendered in shell chrome and page titles.
const AppName = "RoadPlan"
