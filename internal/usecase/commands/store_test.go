//go:build unit

package commands_test

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/domain/batch"
	"cuponera-backend/internal/domain/businessrequest"
	"cuponera-backend/internal/domain/catalog"
	"cuponera-backend/internal/domain/comment"
	"cuponera-backend/internal/domain/coupon"
	"cuponera-backend/internal/domain/otp"
	"cuponera-backend/internal/domain/redemption"
	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/infra/db"
	"cuponera-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory UnitOfWork. Within runs serially and rolls back every map on error.
type memStore struct {
	mu sync.Mutex

	actors      map[uuid.UUID]actor.Snapshot
	ratings     map[uuid.UUID]actor.Rating
	batches     map[uuid.UUID]*batch.Batch
	coupons     map[uuid.UUID]coupon.Coupon
	redemptions []*redemption.Record
	comments    map[uuid.UUID]comment.Comment
	// redeemedWith holds the (client, actor) pairs eligible to comment.
	redeemedWith map[[2]uuid.UUID]bool

	cities     map[uuid.UUID]catalog.City
	categories map[uuid.UUID]catalog.Category
	// referenced marks catalog ids still listed by batches or actors.
	referenced map[uuid.UUID]bool
	otps       []otp.OTP
	requests   map[uuid.UUID]businessrequest.Request

	// hideRedemptions makes the duplicate pre-check blind, as for a concurrent scan that lost the race.
	hideRedemptions bool
	// failIncrement is returned by the scan counter update.
	failIncrement error
}

func newMemStore() *memStore {
	return &memStore{
		actors:       map[uuid.UUID]actor.Snapshot{},
		ratings:      map[uuid.UUID]actor.Rating{},
		batches:      map[uuid.UUID]*batch.Batch{},
		coupons:      map[uuid.UUID]coupon.Coupon{},
		comments:     map[uuid.UUID]comment.Comment{},
		redeemedWith: map[[2]uuid.UUID]bool{},
		cities:       map[uuid.UUID]catalog.City{},
		categories:   map[uuid.UUID]catalog.Category{},
		referenced:   map[uuid.UUID]bool{},
		requests:     map[uuid.UUID]businessrequest.Request{},
	}
}

func (s *memStore) addActor(a *actor.Actor) {
	s.actors[a.ID()] = actor.Snapshot{
		ID:                 a.ID(),
		Name:               a.Name(),
		Email:              a.Email(),
		PasswordHash:       a.PasswordHash(),
		Role:               a.Role(),
		Active:             a.IsActive(),
		ResponsiblePartyID: a.ResponsiblePartyID(),
		CityIDs:            a.CityIDs(),
		CategoryIDs:        a.CategoryIDs(),
		Promotion:          a.Promotion(),
		CreatedAt:          a.CreatedAt(),
		UpdatedAt:          a.UpdatedAt(),
	}
	s.ratings[a.ID()] = a.Rating()
}

func (s *memStore) addBatch(b *batch.Batch) { s.batches[b.ID()] = b }

func (s *memStore) addCoupon(c *coupon.Coupon) { s.coupons[c.ID()] = *c }

func (s *memStore) coupon(id uuid.UUID) *coupon.Coupon {
	c := s.coupons[id]
	return &c
}

func (s *memStore) rating(actorID uuid.UUID) actor.Rating { return s.ratings[actorID] }

func (s *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ratings := maps.Clone(s.ratings)
	coupons := maps.Clone(s.coupons)
	comments := maps.Clone(s.comments)
	records := slices.Clone(s.redemptions)
	cities, categories := maps.Clone(s.cities), maps.Clone(s.categories)
	otps, requests := slices.Clone(s.otps), maps.Clone(s.requests)
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.ratings, s.coupons, s.comments, s.redemptions = ratings, coupons, comments, records
		s.cities, s.categories, s.otps, s.requests = cities, categories, otps, requests
		return err
	}
	return nil
}

func (s *memStore) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, &memReads{s: s})
}

func (s *memStore) CommandReads() shared.CommandReads { return &memReads{s: s} }

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

type memTx struct{ s *memStore }

func (t *memTx) Coupons() shared.CouponRepository         { return &memCoupons{s: t.s} }
func (t *memTx) Batches() shared.BatchRepository          { return &memBatches{s: t.s} }
func (t *memTx) Redemptions() shared.RedemptionRepository { return &memRedemptions{s: t.s} }
func (t *memTx) Actors() shared.ActorRepository           { return nil }
func (t *memTx) Clients() shared.ClientRepository         { return nil }
func (t *memTx) Comments() shared.CommentRepository       { return &memComments{s: t.s} }
func (t *memTx) Ratings() shared.RatingRepository         { return &memRatings{s: t.s} }
func (t *memTx) Favorites() shared.FavoriteRepository     { return nil }
func (t *memTx) Shares() shared.ShareRepository           { return nil }
func (t *memTx) Notifications() shared.NotificationRepository {
	return nil
}
func (t *memTx) Catalog() shared.CatalogRepository { return &memCatalog{s: t.s} }
func (t *memTx) OTPs() shared.OTPRepository        { return &memOTPs{s: t.s} }
func (t *memTx) BusinessRequests() shared.BusinessRequestRepository {
	return &memRequests{s: t.s}
}
func (t *memTx) Reads() shared.CommandReads { return &memReads{s: t.s} }
func (t *memTx) DB() db.DBTX                { return nil }

type memReads struct {
	shared.CommandReads
	s *memStore
}

func (r *memReads) ActorByID(_ context.Context, id uuid.UUID) (*actor.Actor, error) {
	snap, ok := r.s.actors[id]
	if !ok {
		return nil, notFound("actor")
	}
	snap.Rating = r.s.ratings[id]
	return actor.Reconstruct(snap), nil
}

func (r *memReads) ActorDependentIDs(_ context.Context, responsibleID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id, snap := range r.s.actors {
		if snap.ResponsiblePartyID != nil && *snap.ResponsiblePartyID == responsibleID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *memReads) BatchByID(_ context.Context, id uuid.UUID) (*batch.Batch, error) {
	b, ok := r.s.batches[id]
	if !ok {
		return nil, notFound("batch")
	}
	return b, nil
}

func (r *memReads) CouponByID(_ context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	c, ok := r.s.coupons[id]
	if !ok {
		return nil, notFound("coupon")
	}
	return &c, nil
}

func (r *memReads) HasGroupRedemption(_ context.Context, couponID uuid.UUID, members []uuid.UUID, rootID uuid.UUID) (bool, error) {
	if r.s.hideRedemptions {
		return false, nil
	}
	for _, rec := range r.s.redemptions {
		if rec.CouponID() != couponID {
			continue
		}
		if rec.GroupID() == rootID || slices.Contains(members, rec.ActorID()) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memReads) ClientRedeemedWith(_ context.Context, clientID, actorID uuid.UUID) (bool, error) {
	return r.s.redeemedWith[[2]uuid.UUID{clientID, actorID}], nil
}

type memCoupons struct {
	shared.CouponRepository
	s *memStore
}

func (r *memCoupons) LockByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*coupon.Coupon, error) {
	c, ok := r.s.coupons[id]
	if !ok {
		return nil, notFound("coupon")
	}
	return &c, nil
}

func (r *memCoupons) LockBySequence(_ context.Context, _ db.DBTX, batchID uuid.UUID, sequence int) (*coupon.Coupon, error) {
	for _, c := range r.s.coupons {
		if c.BatchID() == batchID && c.Sequence() == sequence {
			return &c, nil
		}
	}
	return nil, notFound("coupon")
}

func (r *memCoupons) CountByBatch(_ context.Context, _ db.DBTX, batchID uuid.UUID) (int, error) {
	n := 0
	for _, c := range r.s.coupons {
		if c.BatchID() == batchID {
			n++
		}
	}
	return n, nil
}

func (r *memCoupons) Create(_ context.Context, _ db.DBTX, c *coupon.Coupon) error {
	for _, existing := range r.s.coupons {
		if existing.BatchID() == c.BatchID() && existing.Sequence() == c.Sequence() {
			return infra.RepositoryError{Kind: infra.KindDuplicateKey, Constraint: "coupons_batch_sequence_key"}
		}
	}
	r.s.coupons[c.ID()] = *c
	return nil
}

func (r *memCoupons) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := r.s.coupons[id]; !ok {
		return notFound("coupon")
	}
	for _, rec := range r.s.redemptions {
		if rec.CouponID() == id {
			return infra.RepositoryError{Kind: infra.KindForeignKeyViolated, Constraint: "redemptions_coupon_id_fkey"}
		}
	}
	delete(r.s.coupons, id)
	return nil
}

func (r *memCoupons) CopyBatch(_ context.Context, _ db.DBTX, cs []*coupon.Coupon) (int64, error) {
	for _, c := range cs {
		r.s.coupons[c.ID()] = *c
	}
	return int64(len(cs)), nil
}

func (r *memCoupons) Save(_ context.Context, _ db.DBTX, c *coupon.Coupon) error {
	if _, ok := r.s.coupons[c.ID()]; !ok {
		return notFound("coupon")
	}
	r.s.coupons[c.ID()] = *c
	return nil
}

func (r *memCoupons) IncrementScanWithinCeiling(_ context.Context, _ db.DBTX, id uuid.UUID, ceiling int, now time.Time) (bool, error) {
	if r.s.failIncrement != nil {
		return false, r.s.failIncrement
	}
	c, ok := r.s.coupons[id]
	if !ok {
		return false, notFound("coupon")
	}
	if c.ScanCount() >= ceiling {
		return false, nil
	}
	r.s.coupons[id] = *coupon.Reconstruct(
		c.ID(), c.BatchID(), c.Sequence(), c.State(), c.ScanCount()+1,
		c.ActivatedAt(), c.ExpiresAt(), c.ActivatedBy(), c.ClientID(), &now,
		c.CreatedAt(), now,
	)
	return true, nil
}

type memBatches struct {
	shared.BatchRepository
	s *memStore
}

func (r *memBatches) LockByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*batch.Batch, error) {
	b, ok := r.s.batches[id]
	if !ok {
		return nil, notFound("batch")
	}
	return b, nil
}

type memRedemptions struct{ s *memStore }

func (r *memRedemptions) Insert(_ context.Context, _ db.DBTX, rec *redemption.Record) error {
	for _, existing := range r.s.redemptions {
		if existing.CouponID() == rec.CouponID() && existing.GroupID() == rec.GroupID() {
			return infra.RepositoryError{Kind: infra.KindDuplicateKey, Constraint: "redemptions_coupon_group_key"}
		}
	}
	r.s.redemptions = append(r.s.redemptions, rec)
	return nil
}

type memComments struct{ s *memStore }

func (r *memComments) Create(_ context.Context, _ db.DBTX, c *comment.Comment) error {
	for _, existing := range r.s.comments {
		if existing.ActorID() == c.ActorID() && existing.ClientID() == c.ClientID() {
			return infra.RepositoryError{Kind: infra.KindDuplicateKey, Constraint: "comments_actor_client_key"}
		}
	}
	r.s.comments[c.ID()] = *c
	return nil
}

func (r *memComments) Update(_ context.Context, _ db.DBTX, c *comment.Comment) error {
	r.s.comments[c.ID()] = *c
	return nil
}

func (r *memComments) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := r.s.comments[id]; !ok {
		return notFound("comment")
	}
	delete(r.s.comments, id)
	return nil
}

func (r *memComments) LockByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*comment.Comment, error) {
	c, ok := r.s.comments[id]
	if !ok {
		return nil, notFound("comment")
	}
	return &c, nil
}

func (r *memComments) LockByPair(_ context.Context, _ db.DBTX, actorID, clientID uuid.UUID) (*comment.Comment, error) {
	for _, c := range r.s.comments {
		if c.ActorID() == actorID && c.ClientID() == clientID {
			return &c, nil
		}
	}
	return nil, notFound("comment")
}

// memRatings mirrors the server-side rating update.
type memRatings struct{ s *memStore }

func (r *memRatings) Apply(_ context.Context, _ db.DBTX, actorID uuid.UUID, d comment.Delta) (actor.Rating, error) {
	cur, ok := r.s.ratings[actorID]
	if !ok {
		return actor.Rating{}, notFound("actor")
	}
	next := actor.Rating{Sum: cur.Sum + d.Sum, Count: cur.Count + d.Count, Average: decimal.Zero}
	if next.Count <= 0 {
		next = actor.Rating{Average: decimal.Zero}
	} else {
		next.Average = decimal.NewFromInt(int64(next.Sum)).
			Div(decimal.NewFromInt(int64(next.Count))).
			Round(2)
	}
	r.s.ratings[actorID] = next
	return next, nil
}

type memCatalog struct{ s *memStore }

func (r *memCatalog) CreateCity(_ context.Context, _ db.DBTX, c *catalog.City) error {
	for _, existing := range r.s.cities {
		if existing.Name() == c.Name() {
			return infra.RepositoryError{Kind: infra.KindDuplicateKey, Constraint: "cities_name_key"}
		}
	}
	r.s.cities[c.ID()] = *c
	return nil
}

func (r *memCatalog) LockCity(_ context.Context, _ db.DBTX, id uuid.UUID) (*catalog.City, error) {
	c, ok := r.s.cities[id]
	if !ok {
		return nil, notFound("city")
	}
	return &c, nil
}

func (r *memCatalog) UpdateCity(_ context.Context, _ db.DBTX, c *catalog.City) error {
	for id, existing := range r.s.cities {
		if id != c.ID() && existing.Name() == c.Name() {
			return infra.RepositoryError{Kind: infra.KindDuplicateKey, Constraint: "cities_name_key"}
		}
	}
	r.s.cities[c.ID()] = *c
	return nil
}

func (r *memCatalog) DeleteCity(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := r.s.cities[id]; !ok {
		return notFound("city")
	}
	delete(r.s.cities, id)
	return nil
}

func (r *memCatalog) CityReferenced(_ context.Context, _ db.DBTX, id uuid.UUID) (bool, error) {
	return r.s.referenced[id], nil
}

func (r *memCatalog) CreateCategory(_ context.Context, _ db.DBTX, c *catalog.Category) error {
	for _, existing := range r.s.categories {
		if existing.Name() == c.Name() {
			return infra.RepositoryError{Kind: infra.KindDuplicateKey, Constraint: "categories_name_key"}
		}
	}
	r.s.categories[c.ID()] = *c
	return nil
}

func (r *memCatalog) LockCategory(_ context.Context, _ db.DBTX, id uuid.UUID) (*catalog.Category, error) {
	c, ok := r.s.categories[id]
	if !ok {
		return nil, notFound("category")
	}
	return &c, nil
}

func (r *memCatalog) UpdateCategory(_ context.Context, _ db.DBTX, c *catalog.Category) error {
	r.s.categories[c.ID()] = *c
	return nil
}

func (r *memCatalog) DeleteCategory(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := r.s.categories[id]; !ok {
		return notFound("category")
	}
	delete(r.s.categories, id)
	return nil
}

func (r *memCatalog) CategoryReferenced(_ context.Context, _ db.DBTX, id uuid.UUID) (bool, error) {
	return r.s.referenced[id], nil
}

type memOTPs struct{ s *memStore }

func (r *memOTPs) Create(_ context.Context, _ db.DBTX, o *otp.OTP) error {
	r.s.otps = append(r.s.otps, *o)
	return nil
}

func (r *memOTPs) DeactivateActive(_ context.Context, _ db.DBTX, email string, keep uuid.UUID, now time.Time) error {
	for i, o := range r.s.otps {
		if o.Email() != email || o.ID() == keep || !o.Active() {
			continue
		}
		r.s.otps[i] = *otp.Reconstruct(otp.Snapshot{
			ID: o.ID(), Email: o.Email(), CodeHash: o.CodeHash(), ExpiresAt: o.ExpiresAt(),
			Used: o.Used(), UsedAt: o.UsedAt(), Active: false, CreatedAt: o.CreatedAt(), UpdatedAt: now,
		})
	}
	return nil
}

// LockLatestActive relies on insertion order standing in for created_at.
func (r *memOTPs) LockLatestActive(_ context.Context, _ db.DBTX, email string) (*otp.OTP, error) {
	for i := len(r.s.otps) - 1; i >= 0; i-- {
		if o := r.s.otps[i]; o.Email() == email && o.Active() {
			return &o, nil
		}
	}
	return nil, notFound("otp")
}

func (r *memOTPs) Save(_ context.Context, _ db.DBTX, o *otp.OTP) error {
	for i := range r.s.otps {
		if r.s.otps[i].ID() == o.ID() {
			r.s.otps[i] = *o
			return nil
		}
	}
	return notFound("otp")
}

type memRequests struct{ s *memStore }

func (r *memRequests) Create(_ context.Context, _ db.DBTX, req *businessrequest.Request) error {
	for _, existing := range r.s.requests {
		if existing.Email() == req.Email() {
			return infra.RepositoryError{Kind: infra.KindDuplicateKey, Constraint: "business_requests_email_key"}
		}
	}
	r.s.requests[req.ID()] = *req
	return nil
}

func (r *memRequests) LockByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*businessrequest.Request, error) {
	req, ok := r.s.requests[id]
	if !ok {
		return nil, notFound("business request")
	}
	return &req, nil
}

func (r *memRequests) Update(_ context.Context, _ db.DBTX, req *businessrequest.Request) error {
	r.s.requests[req.ID()] = *req
	return nil
}

func (r *memRequests) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := r.s.requests[id]; !ok {
		return notFound("business request")
	}
	delete(r.s.requests, id)
	return nil
}

// stubCache counts invalidations.
type stubCache struct {
	mu          sync.Mutex
	invalidated []uuid.UUID
}

func (c *stubCache) GetOrLoad(ctx context.Context, _ uuid.UUID, load func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	return load(ctx)
}

func (c *stubCache) Invalidate(_ context.Context, couponID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, couponID)
	return nil
}

type scanTally struct {
	registered int
	rejected   []string
}

func (o *scanTally) ScanRegistered()          { o.registered++ }
func (o *scanTally) ScanRejected(kind string) { o.rejected = append(o.rejected, kind) }
