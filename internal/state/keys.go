package state

import (
	"strconv"

	"github.com/feral-file/ff-tipping-ledger/internal/domain"
)

// Instance-class keys
const (
	KeyAdmin     = "config/admin"
	KeyPlatform  = "config/platform"
	KeyFeeBps    = "config/fee_bps"
	KeyThreshold = "config/threshold"
	KeyPaused    = "config/paused"
	KeyTipSeq    = "seq/tip"
	KeyTokenSeq  = "seq/token"
	KeyVolume    = "volume"
)

// Persistent-class keys

func ItemTipsKey(item domain.ItemID) string {
	return "item/" + string(item) + "/tips"
}

func ItemTotalKey(item domain.ItemID) string {
	return "item/" + string(item) + "/total"
}

func ItemTokenKey(item domain.ItemID) string {
	return "item/" + string(item) + "/token"
}

func HighlightTipsKey(highlight domain.HighlightID) string {
	return "highlight/" + string(highlight) + "/tips"
}

func TokenKey(tokenID uint64) string {
	return "token/" + strconv.FormatUint(tokenID, 10)
}

func OwnerTokensKey(owner domain.Identity) string {
	return "owner/" + string(owner) + "/tokens"
}

func BalanceKey(identity domain.Identity) string {
	return "balance/" + string(identity)
}
