package model

// DashboardStats feeds the mocked analytics views. The numbers are static
// content, not live measurements.
type DashboardStats struct {
	Appointments   int64 `json:"appointments"`
	Orders         int64 `json:"orders"`
	ActivePrograms int64 `json:"activePrograms"`
	Beneficiaries  int64 `json:"beneficiaries"`
}
