package model

// DashboardStats are the headline counters from GET /admin/dashboard.
type DashboardStats struct {
	TotalUsers     int `json:"totalUsers"`
	PremiumUsers   int `json:"premiumUsers"`
	TotalQuestions int `json:"totalQuestions"`
	TotalTests     int `json:"totalTests"`
	ActiveUsers    int `json:"activeUsers"`
	NewUsers       int `json:"newUsers"`
}

// Activity is one line of the dashboard's recent activity feed.
type Activity struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
	Time string `json:"time"`
}
