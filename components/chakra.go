package components

import "github.com/yohamta/donburi"

// ChakraData is the charge resource spent wholesale on a chakra attack.
type ChakraData struct {
	Charges    int
	Max        int
	IsCharging bool
	// ChargeToken identifies the in-flight charge event; zero when none is pending.
	ChargeToken uint64
}

func (c *ChakraData) Full() bool {
	return c.Charges >= c.Max
}

var Chakra = donburi.NewComponentType[ChakraData]()
