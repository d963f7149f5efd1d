package redemption

import "cuponera-backend/internal/pkg/errs"

var (
	ErrAlreadyRedeemed     = errs.Kind(errs.ErrInvalidArgument, "coupon already redeemed by this business group")
	ErrNoCities            = errs.Kind(errs.ErrInvalidArgument, "business or batch has no assigned cities")
	ErrCityMismatch        = errs.Kind(errs.ErrInvalidArgument, "business city is not eligible for this batch")
	ErrCeilingReached      = errs.Kind(errs.ErrInvalidState, "coupon reached its redemption limit")
	ErrDuplicateRedemption = errs.Kind(errs.ErrConflict, "concurrent redemption for this business group")
)
