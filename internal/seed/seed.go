// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"skip2love/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	NumMessages int
	ShouldClean bool
}

// DefaultOptions returns a seed profile suitable for local development.
func DefaultOptions() Options {
	return Options{
		NumUsers:    30,
		NumPosts:    80,
		NumMessages: 200,
		ShouldClean: true,
	}
}

var cities = []string{
	"Eureka", "Arcata", "Fortuna", "McKinleyville", "Trinidad",
	"Ferndale", "Blue Lake", "Rio Dell", "Garberville", "Willow Creek",
}

var preferencePool = []string{
	"hiking", "live music", "coffee", "surfing", "board games",
	"cooking", "photography", "camping", "yoga", "craft beer",
}

// Seed populates the database with demo data. All generated users share the
// password "password123".
func Seed(db *gorm.DB, opts Options) error {
	slog.Info("seeding database", "users", opts.NumUsers, "posts", opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			slog.Warn("could not clear all existing data, continuing anyway", "error", err)
		}
	}

	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user := BuildUser(r, string(hashed))
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("create seed user: %w", err)
		}
		users = append(users, user)
	}

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		owner := users[r.Intn(len(users))]
		post := BuildPost(r, owner)
		if err := db.Create(post).Error; err != nil {
			return fmt.Errorf("create seed post: %w", err)
		}
		posts = append(posts, post)
	}

	for i := 0; i < opts.NumMessages; i++ {
		sender := users[r.Intn(len(users))]
		receiver := users[r.Intn(len(users))]
		if sender.ID == receiver.ID {
			continue
		}
		msg := &models.Message{
			SenderID:   sender.ID,
			ReceiverID: receiver.ID,
			Content:    gofakeit.Sentence(r.Intn(12) + 3),
			IsRead:     r.Intn(2) == 0,
		}
		if err := db.Create(msg).Error; err != nil {
			return fmt.Errorf("create seed message: %w", err)
		}
	}

	if err := seedSocialGraph(db, r, users, posts); err != nil {
		return err
	}

	slog.Info("seeding complete",
		"users", len(users),
		"posts", len(posts),
		"messages", opts.NumMessages)
	return nil
}

// seedSocialGraph scatters ratings, favorites and a handful of blocks
// across the generated users so listing and aggregate paths have data.
func seedSocialGraph(db *gorm.DB, r *rand.Rand, users []*models.User, posts []*models.Post) error {
	for _, rater := range users {
		for i := 0; i < r.Intn(5); i++ {
			rated := users[r.Intn(len(users))]
			if rated.ID == rater.ID {
				continue
			}
			rating := &models.Rating{
				RaterID:     rater.ID,
				RatedUserID: rated.ID,
				IsPositive:  r.Intn(100) < 75,
			}
			// Pair uniqueness: a repeat pick just loses to the first row.
			db.Where("rater_id = ? AND rated_user_id = ?", rater.ID, rated.ID).
				FirstOrCreate(rating)
		}
	}

	// Rebuild aggregates from the rows written above.
	for _, u := range users {
		var total, positive int64
		if err := db.Model(&models.Rating{}).Where("rated_user_id = ?", u.ID).Count(&total).Error; err != nil {
			return fmt.Errorf("count seed ratings: %w", err)
		}
		if total == 0 {
			continue
		}
		if err := db.Model(&models.Rating{}).
			Where("rated_user_id = ? AND is_positive = ?", u.ID, true).
			Count(&positive).Error; err != nil {
			return fmt.Errorf("count seed ratings: %w", err)
		}
		score := int(float64(positive)/float64(total)*100 + 0.5)
		if err := db.Model(&models.User{}).Where("id = ?", u.ID).
			Updates(map[string]interface{}{"rating": score, "rating_count": total}).Error; err != nil {
			return fmt.Errorf("update seed rating aggregate: %w", err)
		}
	}

	for _, u := range users {
		for i := 0; i < r.Intn(4); i++ {
			post := posts[r.Intn(len(posts))]
			if post.UserID == u.ID {
				continue
			}
			fav := &models.Favorite{UserID: u.ID, PostID: post.ID}
			res := db.Where("user_id = ? AND post_id = ?", u.ID, post.ID).FirstOrCreate(fav)
			if res.Error == nil && res.RowsAffected > 0 {
				db.Model(&models.Post{}).Where("id = ?", post.ID).
					UpdateColumn("favorite_count", gorm.Expr("favorite_count + 1"))
			}
		}
	}

	for i := 0; i < len(users)/10+1; i++ {
		blocker := users[r.Intn(len(users))]
		blocked := users[r.Intn(len(users))]
		if blocker.ID == blocked.ID {
			continue
		}
		block := &models.Block{BlockerID: blocker.ID, BlockedUserID: blocked.ID}
		db.Where("blocker_id = ? AND blocked_user_id = ?", blocker.ID, blocked.ID).
			FirstOrCreate(block)
	}

	return nil
}

// clearData removes all rows in FK-safe order.
func clearData(db *gorm.DB) error {
	tables := []interface{}{
		&models.Report{},
		&models.Block{},
		&models.Favorite{},
		&models.Rating{},
		&models.Message{},
		&models.Post{},
		&models.User{},
	}
	for _, table := range tables {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}
