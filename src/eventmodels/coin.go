package eventmodels

import "fmt"

type Coin string

const (
	CoinBTC Coin = "BTC"
	CoinETH Coin = "ETH"
	CoinSOL Coin = "SOL"
)

func (c Coin) Validate() error {
	if c != CoinBTC && c != CoinETH && c != CoinSOL {
		return fmt.Errorf("Coin: Validate: invalid coin: %s", c)
	}

	return nil
}

func AllCoins() []Coin {
	return []Coin{CoinBTC, CoinETH, CoinSOL}
}
