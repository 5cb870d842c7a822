package store

import "github.com/bright-coral-crab/tooldeck/internal/models"

// seedTools returns the fixed default catalog used on first load.
func seedTools() []models.Tool {
	return []models.Tool{
		{
			Name:        "AI Writer Pro",
			Description: "Advanced AI writing assistant for content creation and editing with support for multiple languages.",
			Image:       "https://picsum.photos/seed/aiwriter/60",
			Link:        "https://aiwriter.example.com",
			Rating:      4.5,
			Reviews:     128,
			Bookmarks:   74,
			Tags:        []string{"Writing", "Content Creation", "AI Assistant"},
			Categories:  []models.Category{"Writing & Editing"},
			Featured:    true,
		},
		{
			Name:        "DataBot Analytics",
			Description: "Powerful data analysis and visualization tool powered by artificial intelligence.",
			Image:       "https://picsum.photos/seed/databot/60",
			Link:        "https://databot.example.com",
			Rating:      4.8,
			Reviews:     256,
			Bookmarks:   145,
			Tags:        []string{"Analytics", "Data Science", "Business Intelligence"},
			Categories:  []models.Category{"Back Office", "Operations"},
			Featured:    true,
		},
		{
			Name:        "SmartFlow Automation",
			Description: "No-code automation platform for streamlining business processes with AI capabilities.",
			Image:       "https://picsum.photos/seed/smartflow/60",
			Link:        "https://smartflow.example.com",
			Rating:      4.2,
			Reviews:     96,
			Bookmarks:   37,
			Tags:        []string{"Automation", "Workflow", "No-Code"},
			Categories:  []models.Category{"Workflow Automation", "Operations"},
			Featured:    false,
		},
		{
			Name:        "DesignAI Studio",
			Description: "AI-powered design tool for creating professional graphics and illustrations instantly.",
			Image:       "https://picsum.photos/seed/designai/60",
			Link:        "https://designai.example.com",
			Rating:      4.6,
			Reviews:     184,
			Bookmarks:   128,
			Tags:        []string{"Design", "Graphics", "Creative"},
			Categories:  []models.Category{"Design & Creative"},
			Featured:    true,
		},
		{
			Name:        "AI Code Assistant",
			Description: "Intelligent coding companion that helps developers write better code faster with real-time suggestions.",
			Image:       "https://picsum.photos/seed/codecomp/60",
			Link:        "https://codeassistant.example.com",
			Rating:      4.7,
			Reviews:     312,
			Bookmarks:   189,
			Tags:        []string{"Development", "Coding", "Productivity"},
			Categories:  []models.Category{"Technology & IT"},
			Featured:    true,
		},
	}
}

// seedUsers returns the fixed demo roster used on first load.
func seedUsers() []models.User {
	return []models.User{
		{
			ID:        "1",
			Name:      "Admin Kullanıcı",
			Email:     "admin@example.com",
			Role:      models.RoleAdmin,
			Status:    models.StatusActive,
			LastLogin: "2023-03-20T14:25:00Z",
			CreatedAt: "2023-01-01T10:00:00Z",
		},
		{
			ID:        "2",
			Name:      "Editör Kullanıcı",
			Email:     "editor@example.com",
			Role:      models.RoleEditor,
			Status:    models.StatusActive,
			LastLogin: "2023-03-18T09:15:00Z",
			CreatedAt: "2023-01-15T14:30:00Z",
		},
		{
			ID:        "3",
			Name:      "İzleyici Kullanıcı",
			Email:     "viewer@example.com",
			Role:      models.RoleViewer,
			Status:    models.StatusInactive,
			LastLogin: "2023-02-28T16:45:00Z",
			CreatedAt: "2023-02-01T11:20:00Z",
		},
	}
}

// defaultSettings returns the site settings used on first load.
func defaultSettings() models.Settings {
	return models.Settings{
		SiteName:               "AI Araçları Dizini",
		SiteDescription:        "En iyi yapay zeka araçlarını keşfedin ve karşılaştırın",
		ContactEmail:           "info@aitools.example.com",
		ItemsPerPage:           10,
		EnableNotifications:    true,
		EnableUserRegistration: true,
		MaintenanceMode:        false,
		FooterText:             "© 2023 AI Araçları Dizini. Tüm hakları saklıdır.",
		AnalyticsID:            "UA-XXXXXXXXX-1",
		Theme:                  models.ThemeLight,
	}
}
