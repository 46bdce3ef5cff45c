package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/99designs/gqlgen/graphql"

	"github.com/feral-file/ff-tipping-ledger/internal/api/shared/executor"
	"github.com/feral-file/ff-tipping-ledger/internal/domain"
)

// Resolver is the root resolver that holds executor
type Resolver struct {
	executor executor.Executor
}

// NewResolver creates a new root resolver with executor
func NewResolver(exec executor.Executor) *Resolver {
	return &Resolver{
		executor: exec,
	}
}

func (r *Resolver) query() object {
	return &queryResolver{r}
}

type queryResolver struct{ *Resolver }

func (*queryResolver) typeName() string { return "Query" }

func (r *queryResolver) resolve(ctx context.Context, field graphql.CollectedField, args map[string]interface{}) (interface{}, error) {
	switch field.Name {
	case "governance":
		cfg, err := r.executor.Governance(ctx)
		if err != nil {
			return nil, err
		}
		return &governanceObject{cfg}, nil
	case "paused":
		return r.executor.IsPaused(ctx)
	case "item":
		id, err := stringArg(args, "id")
		if err != nil {
			return nil, err
		}
		view, err := r.executor.GetItem(ctx, domain.ItemID(id))
		if err != nil {
			return nil, err
		}
		return &itemObject{Resolver: r.Resolver, view: view}, nil
	case "highlightTips":
		id, err := stringArg(args, "highlightId")
		if err != nil {
			return nil, err
		}
		tips, err := r.executor.GetHighlightTips(ctx, domain.HighlightID(id))
		if err != nil {
			return nil, err
		}
		out := make([]object, 0, len(tips))
		for i := range tips {
			out = append(out, &highlightTipObject{tips[i]})
		}
		return out, nil
	case "volume":
		return amount(r.executor.GetVolume(ctx))
	case "balance":
		identity, err := stringArg(args, "identity")
		if err != nil {
			return nil, err
		}
		return amount(r.executor.GetBalance(ctx, domain.Identity(identity)))
	case "token":
		id, err := uint64Arg(args, "id")
		if err != nil {
			return nil, err
		}
		token, err := r.executor.GetToken(ctx, id)
		if errors.Is(err, domain.ErrTokenNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &collectibleObject{token}, nil
	case "ownedTokens":
		owner, err := stringArg(args, "owner")
		if err != nil {
			return nil, err
		}
		tokens, err := r.executor.GetOwnedTokens(ctx, domain.Identity(owner))
		if err != nil {
			return nil, err
		}
		out := make([]object, 0, len(tokens))
		for _, t := range tokens {
			out = append(out, &collectibleObject{t})
		}
		return out, nil
	case "mintThreshold":
		return amount(r.executor.GetMintThreshold(ctx))
	case "__schema":
		if err := introspectionEnabled(ctx); err != nil {
			return nil, err
		}
		return &schemaObject{parsedSchema}, nil
	case "__type":
		if err := introspectionEnabled(ctx); err != nil {
			return nil, err
		}
		name, err := stringArg(args, "name")
		if err != nil {
			return nil, err
		}
		return namedType(parsedSchema, parsedSchema.Types[name]), nil
	}
	return nil, unknownField(r, field)
}

type governanceObject struct {
	cfg *domain.GovernanceConfig
}

func (*governanceObject) typeName() string { return "Governance" }

func (o *governanceObject) resolve(_ context.Context, field graphql.CollectedField, _ map[string]interface{}) (interface{}, error) {
	switch field.Name {
	case "admin":
		return string(o.cfg.Admin), nil
	case "platformAddress":
		return string(o.cfg.PlatformAddress), nil
	case "platformFeeBps":
		return int(o.cfg.PlatformFeeBps), nil
	case "paused":
		return o.cfg.Paused, nil
	case "tipThreshold":
		return BigInt{o.cfg.TipThreshold}, nil
	}
	return nil, unknownField(o, field)
}

type itemObject struct {
	*Resolver
	view *executor.ItemView
}

func (*itemObject) typeName() string { return "Item" }

func (o *itemObject) resolve(ctx context.Context, field graphql.CollectedField, args map[string]interface{}) (interface{}, error) {
	switch field.Name {
	case "id":
		return string(o.view.ItemID), nil
	case "total":
		return BigInt{o.view.Total}, nil
	case "tips":
		out := make([]object, 0, len(o.view.Tips))
		for i := range o.view.Tips {
			out = append(out, &tipObject{o.view.Tips[i]})
		}
		return out, nil
	case "eligible":
		threshold, err := amountArg(args, "threshold")
		if err != nil {
			return nil, err
		}
		return o.executor.IsEligible(ctx, o.view.ItemID, threshold)
	case "collectible":
		if o.view.Collectible == nil {
			return nil, nil
		}
		return &collectibleObject{o.view.Collectible}, nil
	}
	return nil, unknownField(o, field)
}

type tipObject struct {
	rec domain.TipRecord
}

func (*tipObject) typeName() string { return "Tip" }

func (o *tipObject) resolve(_ context.Context, field graphql.CollectedField, _ map[string]interface{}) (interface{}, error) {
	switch field.Name {
	case "tipper":
		return string(o.rec.Tipper), nil
	case "amount":
		return BigInt{o.rec.Amount}, nil
	case "timestamp":
		return Uint64(o.rec.Timestamp), nil
	}
	return nil, unknownField(o, field)
}

type highlightTipObject struct {
	rec domain.HighlightTipRecord
}

func (*highlightTipObject) typeName() string { return "HighlightTip" }

func (o *highlightTipObject) resolve(_ context.Context, field graphql.CollectedField, _ map[string]interface{}) (interface{}, error) {
	switch field.Name {
	case "highlightId":
		return string(o.rec.HighlightID), nil
	case "itemId":
		return string(o.rec.ItemID), nil
	case "tipper":
		return string(o.rec.Tipper), nil
	case "amount":
		return BigInt{o.rec.Amount}, nil
	case "timestamp":
		return Uint64(o.rec.Timestamp), nil
	}
	return nil, unknownField(o, field)
}

type collectibleObject struct {
	token *domain.CollectibleToken
}

func (*collectibleObject) typeName() string { return "Collectible" }

func (o *collectibleObject) resolve(_ context.Context, field graphql.CollectedField, _ map[string]interface{}) (interface{}, error) {
	switch field.Name {
	case "tokenId":
		return Uint64(o.token.TokenID), nil
	case "itemId":
		return string(o.token.ItemID), nil
	case "owner":
		return string(o.token.Owner), nil
	case "minter":
		return string(o.token.Minter), nil
	case "metadataUri":
		return o.token.MetadataURI, nil
	case "permanentRef":
		return o.token.PermanentRef, nil
	case "mintedAt":
		return Uint64(o.token.MintedAt), nil
	case "tipAmountAtMint":
		return BigInt{o.token.TipAmountAtMint}, nil
	}
	return nil, unknownField(o, field)
}

func amount(v *big.Int, err error) (interface{}, error) {
	if err != nil {
		return nil, err
	}
	return BigInt{v}, nil
}

func unknownField(o object, field graphql.CollectedField) error {
	return fmt.Errorf("unknown field %s.%s", o.typeName(), field.Name)
}

func stringArg(args map[string]interface{}, name string) (string, error) {
	switch v := args[name].(type) {
	case string:
		return v, nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case json.Number:
		return v.String(), nil
	}
	return "", fmt.Errorf("%w: %s is required", domain.ErrInvalidArgument, name)
}

// amountArg returns nil when the argument is omitted
func amountArg(args map[string]interface{}, name string) (*big.Int, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return nil, nil
	}
	var v BigInt
	if err := v.UnmarshalGQL(raw); err != nil {
		return nil, err
	}
	return v.Int, nil
}

func uint64Arg(args map[string]interface{}, name string) (uint64, error) {
	var v Uint64
	if err := v.UnmarshalGQL(args[name]); err != nil {
		return 0, err
	}
	return uint64(v), nil
}
