// Package seed holds the fixed starting content for the community feed.
// It is used on first start and whenever the stored snapshot is missing
// or unreadable.
package seed

import "local.dev/communityfeed-backend/internal/models"

// Posts returns a fresh copy of the seed collection. Order here is the
// canonical collection order; sorting happens only in the view.
func Posts() []models.Post {
	return []models.Post{
		{
			ID:        "post_urgent_flood_relief",
			Author:    "Amara Okafor",
			Role:      "Emergency Response Lead",
			AvatarRef: "avatars/amara.jpg",
			Date:      "2026-08-24T09:15:00Z",
			Location:  "Port Harcourt, Nigeria",
			Content: "Flooding has displaced over 400 families in the river communities this week. " +
				"Our team is on the ground distributing clean water, blankets and emergency food kits. " +
				"Every donation today goes straight to relief supplies.",
			MediaRef:  "media/flood-relief.jpg",
			Category:  models.CategoryUrgent,
			Tags:      []string{"emergency", "flood", "relief"},
			IsPinned:  true,
			Likes:     284,
			Views:     5120,
			Shares:    193,
			Reactions: withCounts(96, 124, 0, 41, 8),
			Comments: []models.Comment{
				{
					ID:        "cmt_flood_1",
					Author:    "Daniel Mensah",
					Role:      "Volunteer",
					Content:   "Just shared this with my church group. Stay safe out there, team.",
					Date:      "2026-08-24T11:02:00Z",
					AvatarRef: "avatars/daniel.jpg",
					Likes:     17,
					Replies: []models.Comment{
						{
							ID:        "cmt_flood_1r1",
							Author:    "Amara Okafor",
							Role:      "Emergency Response Lead",
							Content:   "Thank you Daniel, every share reaches more families.",
							Date:      "2026-08-24T11:30:00Z",
							AvatarRef: "avatars/amara.jpg",
							Likes:     9,
						},
					},
				},
			},
			Engagement: 97,
			CTA:        &models.CTA{Label: "Donate to flood relief", Href: "/donate?fund=flood-relief"},
		},
		{
			ID:        "post_scholarship_cohort",
			Author:    "Grace Adeyemi",
			Role:      "Education Programs Director",
			AvatarRef: "avatars/grace.jpg",
			Date:      "2026-08-21T14:00:00Z",
			Content: "Meet our 2026 scholarship cohort! 38 students from 12 communities are starting " +
				"university this September, fully funded. Six of them are the first in their family " +
				"to attend university.",
			MediaRef:  "media/scholars-2026.jpg",
			Category:  models.CategoryScholarship,
			Tags:      []string{"education", "scholarship", "students"},
			Likes:     412,
			Views:     8930,
			Shares:    247,
			Reactions: withCounts(178, 203, 12, 0, 0),
			Comments: []models.Comment{
				{
					ID:        "cmt_cohort_1",
					Author:    "Fatima Bello",
					Content:   "I was in the 2019 cohort. This program changed my life — congratulations to all 38!",
					Date:      "2026-08-21T16:45:00Z",
					AvatarRef: "avatars/fatima.jpg",
					Likes:     54,
				},
				{
					ID:      "cmt_cohort_2",
					Author:  "Samuel Eze",
					Content: "How can local businesses sponsor a student for next year?",
					Date:    "2026-08-22T08:10:00Z",
					Likes:   11,
					Replies: []models.Comment{
						{
							ID:        "cmt_cohort_2r1",
							Author:    "Grace Adeyemi",
							Role:      "Education Programs Director",
							Content:   "We'd love that! There's a partner form on the Get Involved page.",
							Date:      "2026-08-22T09:00:00Z",
							AvatarRef: "avatars/grace.jpg",
							Likes:     8,
						},
					},
				},
			},
			Engagement: 92,
			CTA:        &models.CTA{Label: "Sponsor a student", Href: "/donate?fund=scholarships"},
		},
		{
			ID:        "post_mobile_clinic",
			Author:    "Dr. Kwame Asante",
			Role:      "Medical Outreach Coordinator",
			AvatarRef: "avatars/kwame.jpg",
			Date:      "2026-08-18T10:30:00Z",
			Location:  "Volta Region, Ghana",
			Content: "Our mobile clinic completed its 200th village visit this month. Over 1,400 " +
				"patients screened, 312 children vaccinated, and 89 referred for follow-up care. " +
				"Preventive care is the quiet work that saves the most lives.",
			MediaRef:   "media/mobile-clinic.mp4",
			Category:   models.CategoryHealthcare,
			Tags:       []string{"health", "clinic", "vaccination"},
			Likes:      356,
			Views:      7204,
			Shares:     164,
			Reactions:  withCounts(201, 98, 0, 0, 0),
			Comments:   []models.Comment{},
			Engagement: 88,
		},
		{
			ID:        "post_women_coop",
			Author:    "Nadia Hassan",
			Role:      "Empowerment Programs Lead",
			AvatarRef: "avatars/nadia.jpg",
			Date:      "2026-08-15T13:20:00Z",
			Content: "The women's tailoring cooperative in Kibera just signed its first wholesale " +
				"contract. Eighteen months ago this was a sewing class with four borrowed machines. " +
				"Today it employs 23 women.",
			MediaRef:  "media/tailoring-coop.jpg",
			Category:  models.CategoryEmpowerment,
			Tags:      []string{"women", "livelihoods", "cooperative"},
			Likes:     298,
			Views:     6115,
			Shares:    142,
			Reactions: withCounts(134, 156, 9, 0, 0),
			Comments: []models.Comment{
				{
					ID:      "cmt_coop_1",
					Author:  "Lena Fischer",
					Content: "This is what sustainable development looks like. Incredible work.",
					Date:    "2026-08-15T18:05:00Z",
					Likes:   22,
				},
			},
			Engagement: 85,
		},
		{
			ID:        "post_annual_report",
			Author:    "Hope Foundation",
			Role:      "Official",
			AvatarRef: "avatars/org.png",
			Date:      "2026-08-12T09:00:00Z",
			Content: "Our 2025 annual report is out: 64,000 people reached, 41 active community " +
				"projects, and 87 cents of every dollar spent directly on programs. Full " +
				"breakdown, audited financials and stories inside.",
			MediaRef:   "media/annual-report-2025.pdf",
			Category:   models.CategoryNews,
			Tags:       []string{"report", "transparency", "annual"},
			Likes:      187,
			Views:      4380,
			Shares:     98,
			Reactions:  withCounts(112, 34, 0, 0, 0),
			Comments:   []models.Comment{},
			Engagement: 74,
			CTA:        &models.CTA{Label: "Read the report", Href: "/about/annual-report-2025"},
		},
		{
			ID:        "post_amina_story",
			Author:    "Joseph Banda",
			Role:      "Field Storyteller",
			AvatarRef: "avatars/joseph.jpg",
			Date:      "2026-08-08T15:45:00Z",
			Location:  "Lilongwe, Malawi",
			Content: "Amina walked 6km each way to fetch water before the borehole was drilled in her " +
				"village. Now she's back in school and wants to be an engineer — 'so I can build " +
				"the next one myself,' she says.",
			MediaRef:  "media/amina-well.jpg",
			Category:  models.CategoryStory,
			Tags:      []string{"water", "story", "children"},
			Likes:     523,
			Views:     11840,
			Shares:    388,
			Reactions: withCounts(189, 287, 0, 14, 0),
			Comments: []models.Comment{
				{
					ID:      "cmt_amina_1",
					Author:  "Priya Sharma",
					Content: "Future engineer Amina — remember the name!",
					Date:    "2026-08-08T20:12:00Z",
					Likes:   63,
				},
			},
			Engagement: 95,
		},
		{
			ID:        "post_impact_milestone",
			Author:    "Hope Foundation",
			Role:      "Official",
			AvatarRef: "avatars/org.png",
			Date:      "2026-08-05T08:00:00Z",
			Content: "Milestone: 10,000 families now have access to clean water through our borehole " +
				"program. Thank you to every donor, volunteer and community partner who carried " +
				"this from the first drill to today.",
			MediaRef:   "media/water-milestone.jpg",
			Category:   models.CategoryImpact,
			Tags:       []string{"water", "milestone", "impact"},
			Likes:      467,
			Views:      9920,
			Shares:     301,
			Reactions:  withCounts(244, 198, 0, 0, 0),
			Comments:   []models.Comment{},
			Engagement: 90,
		},
	}
}

// withCounts builds the fixed reaction set with seed counts in the
// canonical kind order: like, love, laugh, sad, angry.
func withCounts(like, love, laugh, sad, angry int) []models.Reaction {
	counts := []int{like, love, laugh, sad, angry}
	out := models.NewReactions()
	for i := range out {
		out[i].Count = counts[i]
	}
	return out
}
