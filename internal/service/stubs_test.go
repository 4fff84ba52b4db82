package service

import (
	"context"

	"skip2love/internal/models"
	"skip2love/internal/repository"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	touchFn         func(context.Context, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) TouchLastActive(ctx context.Context, id uint) error {
	return s.touchFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "stub"}, nil
		},
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		touchFn:         func(context.Context, uint) error { return nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	getByIDFn       func(context.Context, uint, uint) (*models.Post, error)
	listFn          func(context.Context, repository.PostFilters, uint) ([]*models.Post, error)
	updateFn        func(context.Context, *models.Post) error
	softDeleteFn    func(context.Context, uint) error
	incrementViewFn func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) List(ctx context.Context, filters repository.PostFilters, currentUserID uint) ([]*models.Post, error) {
	return s.listFn(ctx, filters, currentUserID)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) SoftDelete(ctx context.Context, id uint) error {
	return s.softDeleteFn(ctx, id)
}
func (s *postRepoStub) IncrementViewCount(ctx context.Context, id uint) error {
	return s.incrementViewFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(context.Context, *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 1, IsActive: true}, nil
		},
		listFn: func(context.Context, repository.PostFilters, uint) ([]*models.Post, error) {
			return nil, nil
		},
		updateFn:        func(context.Context, *models.Post) error { return nil },
		softDeleteFn:    func(context.Context, uint) error { return nil },
		incrementViewFn: func(context.Context, uint) error { return nil },
	}
}

// messageRepoStub is a stub for repository.MessageRepository.
type messageRepoStub struct {
	createFn        func(context.Context, *models.Message) error
	getBetweenFn    func(context.Context, uint, uint) ([]*models.Message, error)
	getAllForUserFn func(context.Context, uint) ([]*models.Message, error)
	markReadFromFn  func(context.Context, uint, uint) error
}

func (s *messageRepoStub) Create(ctx context.Context, msg *models.Message) error {
	return s.createFn(ctx, msg)
}
func (s *messageRepoStub) GetBetween(ctx context.Context, userID, otherUserID uint) ([]*models.Message, error) {
	return s.getBetweenFn(ctx, userID, otherUserID)
}
func (s *messageRepoStub) GetAllForUser(ctx context.Context, userID uint) ([]*models.Message, error) {
	return s.getAllForUserFn(ctx, userID)
}
func (s *messageRepoStub) MarkReadFrom(ctx context.Context, senderID, receiverID uint) error {
	return s.markReadFromFn(ctx, senderID, receiverID)
}

func noopMessageRepo() *messageRepoStub {
	return &messageRepoStub{
		createFn:        func(context.Context, *models.Message) error { return nil },
		getBetweenFn:    func(context.Context, uint, uint) ([]*models.Message, error) { return nil, nil },
		getAllForUserFn: func(context.Context, uint) ([]*models.Message, error) { return nil, nil },
		markReadFromFn:  func(context.Context, uint, uint) error { return nil },
	}
}

// blockRepoStub is a stub for repository.BlockRepository.
type blockRepoStub struct {
	createFn          func(context.Context, uint, uint) error
	deleteFn          func(context.Context, uint, uint) error
	listForUserFn     func(context.Context, uint) ([]*models.Block, error)
	isBlockedEitherFn func(context.Context, uint, uint) (bool, error)
}

func (s *blockRepoStub) Create(ctx context.Context, blockerID, blockedUserID uint) error {
	return s.createFn(ctx, blockerID, blockedUserID)
}
func (s *blockRepoStub) Delete(ctx context.Context, blockerID, blockedUserID uint) error {
	return s.deleteFn(ctx, blockerID, blockedUserID)
}
func (s *blockRepoStub) ListForUser(ctx context.Context, blockerID uint) ([]*models.Block, error) {
	return s.listForUserFn(ctx, blockerID)
}
func (s *blockRepoStub) IsBlockedEither(ctx context.Context, userID, otherUserID uint) (bool, error) {
	return s.isBlockedEitherFn(ctx, userID, otherUserID)
}

func noopBlockRepo() *blockRepoStub {
	return &blockRepoStub{
		createFn:          func(context.Context, uint, uint) error { return nil },
		deleteFn:          func(context.Context, uint, uint) error { return nil },
		listForUserFn:     func(context.Context, uint) ([]*models.Block, error) { return nil, nil },
		isBlockedEitherFn: func(context.Context, uint, uint) (bool, error) { return false, nil },
	}
}

// ratingRepoStub is a stub for repository.RatingRepository.
type ratingRepoStub struct {
	upsertFn      func(context.Context, uint, uint, bool) (*models.Rating, bool, error)
	getByPairFn   func(context.Context, uint, uint) (*models.Rating, error)
	listForUserFn func(context.Context, uint) ([]*models.Rating, error)
}

func (s *ratingRepoStub) Upsert(ctx context.Context, raterID, ratedUserID uint, isPositive bool) (*models.Rating, bool, error) {
	return s.upsertFn(ctx, raterID, ratedUserID, isPositive)
}
func (s *ratingRepoStub) GetByPair(ctx context.Context, raterID, ratedUserID uint) (*models.Rating, error) {
	return s.getByPairFn(ctx, raterID, ratedUserID)
}
func (s *ratingRepoStub) ListForUser(ctx context.Context, ratedUserID uint) ([]*models.Rating, error) {
	return s.listForUserFn(ctx, ratedUserID)
}

func noopRatingRepo() *ratingRepoStub {
	return &ratingRepoStub{
		upsertFn: func(_ context.Context, raterID, ratedUserID uint, isPositive bool) (*models.Rating, bool, error) {
			return &models.Rating{RaterID: raterID, RatedUserID: ratedUserID, IsPositive: isPositive}, true, nil
		},
		getByPairFn:   func(context.Context, uint, uint) (*models.Rating, error) { return nil, nil },
		listForUserFn: func(context.Context, uint) ([]*models.Rating, error) { return nil, nil },
	}
}

// favoriteRepoStub is a stub for repository.FavoriteRepository.
type favoriteRepoStub struct {
	addFn         func(context.Context, uint, uint) (bool, error)
	removeFn      func(context.Context, uint, uint) (bool, error)
	existsFn      func(context.Context, uint, uint) (bool, error)
	listForUserFn func(context.Context, uint) ([]*models.Favorite, error)
}

func (s *favoriteRepoStub) Add(ctx context.Context, userID, postID uint) (bool, error) {
	return s.addFn(ctx, userID, postID)
}
func (s *favoriteRepoStub) Remove(ctx context.Context, userID, postID uint) (bool, error) {
	return s.removeFn(ctx, userID, postID)
}
func (s *favoriteRepoStub) Exists(ctx context.Context, userID, postID uint) (bool, error) {
	return s.existsFn(ctx, userID, postID)
}
func (s *favoriteRepoStub) ListForUser(ctx context.Context, userID uint) ([]*models.Favorite, error) {
	return s.listForUserFn(ctx, userID)
}

func noopFavoriteRepo() *favoriteRepoStub {
	return &favoriteRepoStub{
		addFn:         func(context.Context, uint, uint) (bool, error) { return true, nil },
		removeFn:      func(context.Context, uint, uint) (bool, error) { return true, nil },
		existsFn:      func(context.Context, uint, uint) (bool, error) { return false, nil },
		listForUserFn: func(context.Context, uint) ([]*models.Favorite, error) { return nil, nil },
	}
}

// reportRepoStub is a stub for repository.ReportRepository.
type reportRepoStub struct {
	createFn       func(context.Context, *models.Report) error
	listByStatusFn func(context.Context, models.ReportStatus) ([]*models.Report, error)
}

func (s *reportRepoStub) Create(ctx context.Context, report *models.Report) error {
	return s.createFn(ctx, report)
}
func (s *reportRepoStub) ListByStatus(ctx context.Context, status models.ReportStatus) ([]*models.Report, error) {
	return s.listByStatusFn(ctx, status)
}

func noopReportRepo() *reportRepoStub {
	return &reportRepoStub{
		createFn:       func(context.Context, *models.Report) error { return nil },
		listByStatusFn: func(context.Context, models.ReportStatus) ([]*models.Report, error) { return nil, nil },
	}
}
