package domain

import "time"

// Block is a mined block as exposed by the explorer endpoints.
type Block struct {
	ID           string    `json:"id"`
	BlockIndex   int64     `json:"block_index"`
	Timestamp    int64     `json:"timestamp"`
	PreviousHash string    `json:"previous_hash"`
	Hash         string    `json:"hash"`
	Nonce        int64     `json:"nonce"`
	MerkleRoot   string    `json:"merkle_root"`
	Difficulty   int       `json:"difficulty"`
	MinedBy      string    `json:"mined_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// BlockDetail pairs a block with the transactions it contains.
type BlockDetail struct {
	Block        Block         `json:"block"`
	Transactions []Transaction `json:"transactions"`
}
