package memstore

import (
	"time"

	"savesphere/internal/domain/deal"
	"savesphere/internal/domain/notification"
	"savesphere/internal/domain/user"
)

// Fixtures is the startup dataset. The catalog has no persistence; every
// process starts from this seed, mirroring the source app's mock data.
type Fixtures struct {
	Deals         []*deal.Deal
	Users         []*user.User
	Notifications []*notification.Notification
}

// CurrentUserID is the acting user the fixture notifications belong to.
const CurrentUserID = "u1"

func NewFixtures(now time.Time) *Fixtures {
	return &Fixtures{
		Deals:         fixtureDeals(now),
		Users:         fixtureUsers(now),
		Notifications: fixtureNotifications(now),
	}
}

func fixtureUsers(now time.Time) []*user.User {
	joined := func(daysAgo int) time.Time { return now.AddDate(0, 0, -daysAgo) }
	return []*user.User{
		user.Reconstruct("u1", "Arjun Sharma", "https://i.pravatar.cc/150?img=11",
			345, 12, 28, joined(350), false, "Mumbai, Maharashtra", deal.CategoryStudent, 0, false),
		user.Reconstruct("u2", "Jamie Smith", "https://i.pravatar.cc/150?img=5",
			520, 18, 40, joined(420), true, "San Francisco, CA", deal.CategoryProfessional, 0, true),
		user.Reconstruct("u3", "Riley Chen", "https://i.pravatar.cc/150?img=3",
			210, 7, 15, joined(200), false, "San Francisco, CA", deal.CategoryStudent, 0, false),
		user.Reconstruct("u4", "Morgan Taylor", "https://i.pravatar.cc/150?img=8",
			180, 5, 9, joined(150), false, "San Francisco, CA", deal.CategoryFamily, 0, false),
		user.Reconstruct("u5", "Casey Kim", "https://i.pravatar.cc/150?img=12",
			95, 3, 4, joined(90), false, "San Francisco, CA", deal.CategoryProfessional, 0, false),
	}
}

func fixtureDeals(now time.Time) []*deal.Deal {
	type seed struct {
		id             string
		title          string
		description    string
		discount       string
		store          string
		category       string
		dealType       deal.Type
		promoCode      string
		affiliateURL   string
		platform       string
		address        string
		lat, lng       float64
		expiresInHours int
		createdAgoHrs  int
		postedBy       deal.PostedBy
		verified       int
		flagged        int
		image          string
		audiences      []deal.UserCategory
	}

	jamie := deal.PostedBy{UserID: "u2", Name: "Jamie Smith", Avatar: "https://i.pravatar.cc/150?img=5"}
	riley := deal.PostedBy{UserID: "u3", Name: "Riley Chen", Avatar: "https://i.pravatar.cc/150?img=3"}
	morgan := deal.PostedBy{UserID: "u4", Name: "Morgan Taylor", Avatar: "https://i.pravatar.cc/150?img=8"}
	casey := deal.PostedBy{UserID: "u5", Name: "Casey Kim", Avatar: "https://i.pravatar.cc/150?img=12"}

	seeds := []seed{
		{
			id: "d1", title: "50% Off All Produce",
			description: "Get 50% off all fresh produce until end of day!",
			discount:    "50%", store: "Whole Foods Market", category: "Groceries",
			dealType: deal.TypeInStore,
			address:  "123 Main St, San Francisco, CA", lat: 37.7749, lng: -122.4194,
			expiresInHours: 5, createdAgoHrs: 2, postedBy: jamie,
			verified: 12, flagged: 0,
			image:     "https://images.unsplash.com/photo-1542838132-92c53300491e",
			audiences: []deal.UserCategory{deal.CategoryFamily, deal.CategoryProfessional},
		},
		{
			id: "d2", title: "Buy 1 Get 1 Free Lattes",
			description: "Buy one latte, get one free! Perfect for bringing a friend.",
			discount:    "BOGO", store: "Starbucks", category: "Coffee & Beverages",
			dealType: deal.TypeInStore,
			address:  "456 Market St, San Francisco, CA", lat: 37.7899, lng: -122.4014,
			expiresInHours: 24, createdAgoHrs: 5, postedBy: riley,
			verified: 8, flagged: 1,
			image:     "https://images.unsplash.com/photo-1541167760496-1628856ab772",
			audiences: []deal.UserCategory{deal.CategoryStudent, deal.CategoryProfessional},
		},
		{
			id: "d3", title: "30% Off All Athleisure",
			description: "Flash sale on all athleisure wear. Discount applied at checkout.",
			discount:    "30%", store: "Lululemon", category: "Clothing & Fashion",
			dealType: deal.TypeInStore,
			address:  "789 Union Square, San Francisco, CA", lat: 37.7879, lng: -122.4075,
			expiresInHours: 48, createdAgoHrs: 10, postedBy: morgan,
			verified: 15, flagged: 0,
			image:     "https://images.unsplash.com/photo-1562157873-818bc0726f68",
			audiences: []deal.UserCategory{deal.CategoryStudent},
		},
		{
			id: "d4", title: "75% Off Clearance Electronics",
			description: "Massive clearance on last season's electronics. Limited quantities!",
			discount:    "75%", store: "Best Buy", category: "Electronics",
			dealType: deal.TypeInStore,
			address:  "101 Technology Ave, San Francisco, CA", lat: 37.7739, lng: -122.4312,
			expiresInHours: 10, createdAgoHrs: 1, postedBy: casey,
			verified: 6, flagged: 2,
			image:     "https://images.unsplash.com/photo-1550009158-9ebf69173e03",
			audiences: []deal.UserCategory{deal.CategoryProfessional},
		},
		{
			id: "d5", title: "20% Off Weekend Brunch",
			description: "Enjoy 20% off our weekend brunch menu, including mimosas!",
			discount:    "20%", store: "The Breakfast Club", category: "Restaurants & Dining",
			dealType: deal.TypeInStore,
			address:  "202 Foodie Lane, San Francisco, CA", lat: 37.7855, lng: -122.4230,
			expiresInHours: 72, createdAgoHrs: 18, postedBy: jamie,
			verified: 22, flagged: 0,
			image:     "https://images.unsplash.com/photo-1533777857889-4be7c70b33f7",
			audiences: []deal.UserCategory{deal.CategoryFamily},
		},
		{
			id: "d9", title: "FLAT 500 Off on Electronics",
			description: "Use code TECHSAVE500 at checkout for ₹500 off on all electronics over ₹3000.",
			discount:    "₹500", store: "Amazon", category: "Electronics",
			dealType: deal.TypeOnline, promoCode: "TECHSAVE500", platform: "Amazon",
			address:        "Online",
			expiresInHours: 72, createdAgoHrs: 8, postedBy: jamie,
			verified: 30, flagged: 0,
			image:     "https://images.unsplash.com/photo-1593642702821-c8da6771f0c6",
			audiences: []deal.UserCategory{deal.CategoryStudent, deal.CategoryProfessional, deal.CategoryFamily},
		},
		{
			id: "d10", title: "40% Off First Myntra Order",
			description: "Exclusive 40% discount on your first order with Myntra. Limited time offer!",
			discount:    "40%", store: "Myntra", category: "Clothing & Fashion",
			dealType: deal.TypeAffiliate, platform: "Myntra",
			affiliateURL:   "https://www.myntra.com/?utm=savesphere&code=FIRST40",
			address:        "Online",
			expiresInHours: 48, createdAgoHrs: 6, postedBy: riley,
			verified: 15, flagged: 0,
			image:     "https://images.unsplash.com/photo-1607082348824-0a96f2a4b9da",
			audiences: []deal.UserCategory{deal.CategoryStudent, deal.CategoryFamily},
		},
	}

	deals := make([]*deal.Deal, 0, len(seeds))
	for _, s := range seeds {
		deals = append(deals, deal.Reconstruct(
			s.id,
			deal.Draft{
				Title:        s.title,
				Description:  s.description,
				Discount:     s.discount,
				Store:        s.store,
				Category:     s.category,
				DealType:     s.dealType,
				PromoCode:    s.promoCode,
				AffiliateURL: s.affiliateURL,
				Platform:     s.platform,
				Location: deal.Location{
					Address:     s.address,
					Coordinates: deal.Coordinates{Lat: s.lat, Lng: s.lng},
				},
				ExpiresAt:      now.Add(time.Duration(s.expiresInHours) * time.Hour),
				Image:          s.image,
				UserCategories: s.audiences,
			},
			s.postedBy,
			"",
			s.verified, s.flagged,
			now.Add(-time.Duration(s.createdAgoHrs)*time.Hour),
		))
	}
	return deals
}

func fixtureNotifications(now time.Time) []*notification.Notification {
	return []*notification.Notification{
		notification.Reconstruct("n1", CurrentUserID, notification.KindDealExpiring,
			"Deal Expiring Soon", "The 50% off at Whole Foods expires in 2 hours!",
			now.Add(-1*time.Hour), false, "d1"),
		notification.Reconstruct("n2", CurrentUserID, notification.KindPointsEarned,
			"Points Earned", "You earned 10 points for posting a new deal!",
			now.Add(-5*time.Hour), true, ""),
		notification.Reconstruct("n3", CurrentUserID, notification.KindDealVerified,
			"Deal Verified", "5 people verified your Starbucks BOGO deal!",
			now.Add(-12*time.Hour), true, "d2"),
		notification.Reconstruct("n4", CurrentUserID, notification.KindNewDeal,
			"New Deal Nearby", "New electronics deal at Best Buy just 0.5 miles away!",
			now.Add(-2*time.Hour), false, "d4"),
	}
}
