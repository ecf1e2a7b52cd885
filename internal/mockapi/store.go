package mockapi

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"crescent-wallet/internal/core/domain"

	"github.com/google/uuid"
)

// faucetBalance is credited to every freshly registered wallet so local
// flows can send money immediately.
const faucetBalance = 500.0

type account struct {
	user         domain.User
	passwordHash string
	wallet       domain.Wallet
}

// store is the mock backend's in-memory state.
type store struct {
	mu            sync.RWMutex
	accounts      map[string]*account // keyed by email
	byAddress     map[string]*account
	byID          map[string]*account
	transactions  []domain.Transaction
	blocks        []domain.Block
	beneficiaries map[string][]domain.Beneficiary // keyed by user id
	logs          []domain.SystemLog
	started       time.Time
}

func newStore() *store {
	s := &store{
		accounts:      make(map[string]*account),
		byAddress:     make(map[string]*account),
		byID:          make(map[string]*account),
		beneficiaries: make(map[string][]domain.Beneficiary),
		started:       time.Now(),
	}
	s.blocks = append(s.blocks, genesisBlock())
	return s
}

func hashPassword(pw string) string {
	sum := sha256.Sum256([]byte(pw))
	return hex.EncodeToString(sum[:])
}

func newAddress() string {
	return "CRW" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:24]
}

func txHash() string {
	sum := sha256.Sum256([]byte(uuid.New().String()))
	return hex.EncodeToString(sum[:])
}

func genesisBlock() domain.Block {
	return domain.Block{
		ID:           uuid.New().String(),
		BlockIndex:   0,
		Timestamp:    time.Now().Unix(),
		PreviousHash: strings.Repeat("0", 64),
		Hash:         txHash(),
		MerkleRoot:   strings.Repeat("0", 64),
		Difficulty:   2,
		CreatedAt:    time.Now(),
	}
}

func (s *store) createAccount(email, fullName, cnic, password string) (*account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[email]; exists {
		return nil, fmt.Errorf("email already registered")
	}

	now := time.Now()
	acc := &account{
		user: domain.User{
			ID:         uuid.New().String(),
			Email:      email,
			FullName:   fullName,
			CNIC:       cnic,
			IsVerified: true,
			CreatedAt:  now,
		},
		passwordHash: hashPassword(password),
	}
	acc.wallet = domain.Wallet{
		ID:            uuid.New().String(),
		UserID:        acc.user.ID,
		WalletAddress: newAddress(),
		Balance:       faucetBalance,
		LastUpdated:   now,
	}
	acc.user.WalletID = acc.wallet.ID

	s.accounts[email] = acc
	s.byAddress[acc.wallet.WalletAddress] = acc
	s.byID[acc.user.ID] = acc
	return acc, nil
}

func (s *store) authenticate(email, password string) (*account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[email]
	if !ok || acc.passwordHash != hashPassword(password) {
		return nil, false
	}
	return acc, true
}

func (s *store) accountByID(id string) (*account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.byID[id]
	return acc, ok
}

func (s *store) balance(address string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.byAddress[address]
	if !ok {
		return 0, false
	}
	return acc.wallet.Balance, true
}

// submitTransaction debits the sender and queues a pending transaction.
// The receiver is credited when the transaction is mined.
func (s *store) submitTransaction(sender, receiver string, amount, fee float64, note, signature string) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from, ok := s.byAddress[sender]
	if !ok {
		return nil, fmt.Errorf("sender wallet not found")
	}
	if _, ok := s.byAddress[receiver]; !ok {
		return nil, fmt.Errorf("receiver wallet not found")
	}
	if fee < 0 || fee > domain.MaxTransactionFee {
		return nil, fmt.Errorf("fee out of range")
	}
	if from.wallet.Balance < amount+fee {
		return nil, fmt.Errorf("insufficient balance")
	}

	from.wallet.Balance -= amount + fee
	from.wallet.LastUpdated = time.Now()

	tx := domain.Transaction{
		ID:              uuid.New().String(),
		TransactionHash: txHash(),
		SenderWallet:    sender,
		ReceiverWallet:  receiver,
		Amount:          amount,
		Fee:             fee,
		Note:            note,
		Signature:       signature,
		Status:          domain.StatusPending,
		TransactionType: domain.TypeTransfer,
		CreatedAt:       time.Now(),
	}
	s.transactions = append(s.transactions, tx)
	return &tx, nil
}

func (s *store) history(address string, limit, offset int) []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Transaction
	for _, tx := range s.transactions {
		if tx.SenderWallet == address || tx.ReceiverWallet == address {
			out = append(out, tx)
		}
	}
	// newest first
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return page(out, limit, offset)
}

func (s *store) pending() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Transaction
	for _, tx := range s.transactions {
		if tx.Status == domain.StatusPending {
			out = append(out, tx)
		}
	}
	return out
}

// mine confirms all pending transactions into a new block and credits the
// receivers. Fees are burned, not paid to the miner; good enough for a dev
// backend.
func (s *store) mine(minerAddress string) (*domain.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.blocks[len(s.blocks)-1]
	block := domain.Block{
		ID:           uuid.New().String(),
		BlockIndex:   prev.BlockIndex + 1,
		Timestamp:    time.Now().Unix(),
		PreviousHash: prev.Hash,
		Hash:         txHash(),
		MerkleRoot:   txHash(),
		Difficulty:   2,
		MinedBy:      minerAddress,
		CreatedAt:    time.Now(),
	}

	for i := range s.transactions {
		tx := &s.transactions[i]
		if tx.Status != domain.StatusPending {
			continue
		}
		tx.Status = domain.StatusConfirmed
		tx.BlockHash = &block.Hash
		if to, ok := s.byAddress[tx.ReceiverWallet]; ok {
			to.wallet.Balance += tx.Amount
			to.wallet.LastUpdated = time.Now()
		}
	}

	s.blocks = append(s.blocks, block)
	return &block, nil
}

func (s *store) blockPage(limit, offset int) []domain.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Block, len(s.blocks))
	copy(out, s.blocks)
	sort.Slice(out, func(i, j int) bool { return out[i].BlockIndex > out[j].BlockIndex })
	return page(out, limit, offset)
}

func (s *store) blockByHash(hash string) (*domain.Block, []domain.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.blocks {
		if b.Hash != hash {
			continue
		}
		var txns []domain.Transaction
		for _, tx := range s.transactions {
			if tx.BlockHash != nil && *tx.BlockHash == hash {
				txns = append(txns, tx)
			}
		}
		return &b, txns, true
	}
	return nil, nil, false
}

func (s *store) transactionsFor(address string) []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Transaction
	for _, tx := range s.transactions {
		if tx.SenderWallet == address || tx.ReceiverWallet == address {
			out = append(out, tx)
		}
	}
	return out
}

func (s *store) addBeneficiary(userID, walletID, nickname string) domain.Beneficiary {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := domain.Beneficiary{
		ID:                  uuid.New().String(),
		UserID:              userID,
		BeneficiaryWalletID: walletID,
		Nickname:            nickname,
		CreatedAt:           time.Now(),
	}
	s.beneficiaries[userID] = append(s.beneficiaries[userID], b)
	return b
}

func (s *store) listBeneficiaries(userID string) []domain.Beneficiary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Beneficiary(nil), s.beneficiaries[userID]...)
}

func (s *store) appendLog(logType, message, address string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, domain.SystemLog{
		ID:            uuid.New().String(),
		LogType:       logType,
		Message:       message,
		WalletAddress: address,
		CreatedAt:     time.Now(),
	})
}

func (s *store) logPage(logType string, limit, offset int) []domain.SystemLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.SystemLog
	for _, l := range s.logs {
		if logType == "" || logType == "ALL" || l.LogType == logType {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return page(out, limit, offset)
}

func (s *store) logStats() domain.SystemLogStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.SystemLogStats{
		Total:   int64(len(s.logs)),
		ByType:  make(map[string]int64),
		Since:   s.started,
		Updated: time.Now(),
	}
	for _, l := range s.logs {
		stats.ByType[l.LogType]++
	}
	return stats
}

func (s *store) uptime() time.Duration {
	return time.Since(s.started)
}

func page[T any](in []T, limit, offset int) []T {
	if offset >= len(in) {
		return nil
	}
	in = in[offset:]
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}
