package consts

// IV256 and IV512 are the initial chaining values for the two digest sizes.
var (
	IV256 = [BlockLen]byte{
		0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
		0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
		0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
		0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
		0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
		0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
		0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
		0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
	}

	IV512 = [BlockLen]byte{}
)

// BlockBits is the big-endian encoding of the bit length of one full block.
var BlockBits = [...]byte{0x00, 0x00, 0x02, 0x00}

const (
	BlockLen = 64
	LaneLen  = 8
	Lanes    = BlockLen / LaneLen
	Rounds   = 12
)

const (
	Size256 = 32
	Size512 = 64
)
