package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"skip2love/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

// BuildUser constructs an unsaved user with realistic profile content.
func BuildUser(r *rand.Rand, hashedPassword string) *models.User {
	first := gofakeit.FirstName()
	last := gofakeit.LastName()
	username := strings.ToLower(fmt.Sprintf("%s_%s%d", first, last, r.Intn(1000)))

	prefs := make([]string, 0, 3)
	for _, i := range r.Perm(len(preferencePool))[:r.Intn(3)+1] {
		prefs = append(prefs, preferencePool[i])
	}

	return &models.User{
		Username:    username,
		Email:       strings.ToLower(fmt.Sprintf("%s.%s%d@example.com", first, last, r.Intn(1000))),
		Password:    hashedPassword,
		FullName:    first + " " + last,
		Age:         r.Intn(42) + 18,
		City:        cities[r.Intn(len(cities))],
		Bio:         gofakeit.Sentence(r.Intn(10) + 5),
		Phone:       gofakeit.Phone(),
		IsVerified:  r.Intn(100) < 40,
		IsPremium:   r.Intn(100) < 20,
		Avatar:      fmt.Sprintf("https://picsum.photos/seed/%s/400/400", gofakeit.UUID()),
		Images:      buildImageSet(r, 3),
		Preferences: prefs,
		LastActive:  randomPastTime(r, 14),
	}
}

// BuildPost constructs an unsaved post owned by the given user.
func BuildPost(r *rand.Rand, owner *models.User) *models.Post {
	tags := make([]string, 0, 3)
	for _, i := range r.Perm(len(preferencePool))[:r.Intn(3)+1] {
		tags = append(tags, preferencePool[i])
	}

	return &models.Post{
		UserID:      owner.ID,
		Title:       gofakeit.Sentence(r.Intn(5) + 3),
		Description: gofakeit.Paragraph(1, 3, 8, "\n"),
		City:        owner.City,
		IsPremium:   owner.IsPremium,
		Images:      buildImageSet(r, 4),
		Tags:        tags,
		IsActive:    r.Intn(100) < 90,
		ViewCount:   r.Intn(500),
		CreatedAt:   randomPastTime(r, 90),
	}
}

func buildImageSet(r *rand.Rand, max int) []string {
	imgs := make([]string, 0, max)
	for i := 0; i < r.Intn(max)+1; i++ {
		imgs = append(imgs, fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()))
	}
	return imgs
}

func randomPastTime(r *rand.Rand, maxDays int) time.Time {
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	minsBack := r.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}
