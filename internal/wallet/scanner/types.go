package scanner

import "github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// KeyDeriver decides output ownership from the wallet's key material.
	KeyDeriver interface {
		MatchOutput(tx *model.Transaction, index int) (model.OutputMatch, bool, error)
	}
	// KeyImageIndex resolves key images of outputs the wallet already owns.
	KeyImageIndex interface {
		OwnedOutput(ki model.KeyImage) (model.Output, bool)
	}
)
