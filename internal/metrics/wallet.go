package metrics

// Wallet bundles the collectors a wallet instance reports to.
type Wallet struct {
	*WalletSyncer
	*WalletTxBuilder
}

// NewWallet constructs the collectors for one wallet on network.
func NewWallet(network string) Wallet {
	return Wallet{
		WalletSyncer:    NewWalletSyncer(network),
		WalletTxBuilder: NewWalletTxBuilder(network),
	}
}
