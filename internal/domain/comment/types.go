package comment

import "cuponera-backend/internal/pkg/errs"

var (
	ErrNotFound         = errs.Kind(errs.ErrNotFound, "comment not found")
	ErrInvalidRating    = errs.Kind(errs.ErrInvalidArgument, "rating must be between 1 and 5")
	ErrTextTooLong      = errs.Kind(errs.ErrInvalidArgument, "comment exceeds maximum length")
	ErrNotEligible      = errs.Kind(errs.ErrInvalidArgument, "client has not redeemed a coupon with this business")
	ErrEmptyEdit        = errs.Kind(errs.ErrInvalidArgument, "nothing to update")
	ErrAlreadyCommented = errs.Kind(errs.ErrConflict, "client already commented on this business")
)
