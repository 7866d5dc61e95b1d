package services

import (
	"github.com/Adarshkumar111/Maintenance/internal/models"
)

// DashboardService serves the fixed figures shown on the dashboards. None of
// them are derived from live data.
type DashboardService struct{}

// NewDashboardService creates a new dashboard service
func NewDashboardService() *DashboardService {
	return &DashboardService{}
}

// AdminOverview returns the admin overview tab
func (s *DashboardService) AdminOverview() models.AdminOverview {
	return models.AdminOverview{
		Stats: []models.Stat{
			{Title: "Total Complaints", Value: "156", Change: "+12%", Color: "bg-blue-500"},
			{Title: "Active Staff", Value: "24", Change: "+2", Color: "bg-green-500"},
			{Title: "Departments", Value: "6", Change: "0", Color: "bg-purple-500"},
			{Title: "Resolution Rate", Value: "87%", Change: "+5%", Color: "bg-orange-500"},
		},
		Trends: []models.TrendPoint{
			{Month: "Jan", Complaints: 45, Resolved: 38},
			{Month: "Feb", Complaints: 52, Resolved: 45},
			{Month: "Mar", Complaints: 49, Resolved: 42},
			{Month: "Apr", Complaints: 63, Resolved: 55},
			{Month: "May", Complaints: 58, Resolved: 51},
			{Month: "Jun", Complaints: 67, Resolved: 58},
		},
		Categories: []models.CategoryShare{
			{Name: "Electrical", Value: 35, Color: "#3b82f6"},
			{Name: "Plumbing", Value: 25, Color: "#10b981"},
			{Name: "Housekeeping", Value: 20, Color: "#f59e0b"},
			{Name: "Maintenance", Value: 15, Color: "#8b5cf6"},
			{Name: "Others", Value: 5, Color: "#ef4444"},
		},
		Notifications: []models.Notification{
			{ID: 1, Message: "New complaint from Room 101", Time: "5 min ago", Type: "complaint"},
			{ID: 2, Message: "Staff leave request pending", Time: "10 min ago", Type: "leave"},
			{ID: 3, Message: "Material request from Electrician dept", Time: "15 min ago", Type: "material"},
		},
	}
}

// SupervisorAnalytics returns the headline cards of the supervisor analytics tab
func (s *DashboardService) SupervisorAnalytics() []models.Stat {
	return []models.Stat{
		{Title: "Total Complaints", Value: "45", Color: "bg-blue-500"},
		{Title: "Resolved Today", Value: "12", Color: "bg-green-500"},
		{Title: "Active Staff", Value: "8", Color: "bg-purple-500"},
		{Title: "Avg Resolution", Value: "2.5h", Color: "bg-orange-500"},
	}
}

// StaffProfile is the signed-in staff member on the staff dashboard
func (s *DashboardService) StaffProfile() models.Profile {
	return models.Profile{Name: "Rahul Kumar", EmpID: "EMP001", Department: "Electrician", JoinDate: "2023-01-15", Initials: "RK"}
}

// SupervisorProfile is the signed-in supervisor
func (s *DashboardService) SupervisorProfile() models.Profile {
	return models.Profile{Name: "Vikram Singh", EmpID: "SUP001", Department: "Maintenance", Initials: "VS"}
}

// StoreProfile is the signed-in store supervisor
func (s *DashboardService) StoreProfile() models.Profile {
	return models.Profile{Name: "Suresh Patil", EmpID: "STORE001", Department: "Store", Initials: "SP"}
}

// ComplaintOptions are the guest cards on the landing page
func (s *DashboardService) ComplaintOptions() []models.LandingOption {
	return []models.LandingOption{
		{Title: "Room Complaint", Description: "Report issues in your room", Badge: "Scan QR or Enter Room No.", Path: "/complaint/room/" + DefaultRoomNo},
		{Title: "Area Complaint", Description: "Report common area issues", Badge: "No OTP Required", Path: "/complaint/area/" + DefaultAreaName},
	}
}

// RoleOptions are the portal cards on the landing page
func (s *DashboardService) RoleOptions() []models.LandingOption {
	options := make([]models.LandingOption, 0, len(models.Roles))
	for _, role := range models.Roles {
		options = append(options, models.LandingOption{
			Title:       string(role),
			Description: "Access " + string(role) + " Portal",
			Path:        role.Path(),
		})
	}
	return options
}

// Features are the feature tiles on the landing page
func (s *DashboardService) Features() []models.LandingOption {
	return []models.LandingOption{
		{Title: "QR-Based Complaints", Description: "Easy complaint registration via QR codes", Path: "#file-complaint"},
		{Title: "Real-time Analytics", Description: "Track performance and trends instantly", Path: "/login"},
		{Title: "Staff Management", Description: "Efficient assignment and tracking", Path: "/login"},
		{Title: "Role-Based Access", Description: "Secure access for different roles", Path: "/login"},
	}
}
