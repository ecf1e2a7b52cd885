package mockapi

import (
	"net/http"
	"net/mail"
	"strconv"
	"time"

	"crescent-wallet/internal/core/domain"
	"crescent-wallet/internal/core/ports"
	"crescent-wallet/internal/report"
	"crescent-wallet/pkg/envelope"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	CNIC     string `json:"cnic" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		envelope.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		envelope.Fail(c, http.StatusBadRequest, "INVALID_EMAIL", "invalid email format")
		return
	}
	if len(req.Password) < 8 {
		envelope.Fail(c, http.StatusBadRequest, "WEAK_PASSWORD", "password must be at least 8 characters")
		return
	}

	acc, err := s.store.createAccount(req.Email, req.FullName, req.CNIC, req.Password)
	if err != nil {
		envelope.Fail(c, http.StatusConflict, "EMAIL_EXISTS", "email already registered")
		return
	}
	s.store.appendLog("AUTH", "user registered", acc.wallet.WalletAddress)

	envelope.Write(c, http.StatusCreated, "account created", ports.RegisterResult{
		UserID:        acc.user.ID,
		WalletID:      acc.wallet.ID,
		WalletAddress: acc.wallet.WalletAddress,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		envelope.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request")
		return
	}

	acc, ok := s.store.authenticate(req.Email, req.Password)
	if !ok {
		envelope.Fail(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials")
		return
	}

	token, err := s.tokens.generate(acc.user.ID, acc.wallet.WalletAddress)
	if err != nil {
		envelope.Fail(c, http.StatusInternalServerError, "TOKEN_ERROR", "failed to generate token")
		return
	}
	s.store.appendLog("AUTH", "user logged in", acc.wallet.WalletAddress)

	user := acc.user
	envelope.Write(c, http.StatusOK, "logged in", gin.H{
		"token": token,
		"user":  user,
	})
}

func (s *Server) handleWalletProfile(c *gin.Context) {
	acc := currentAccount(c)
	envelope.Write(c, http.StatusOK, "wallet retrieved", acc.wallet)
}

type balanceRequest struct {
	WalletAddress string `json:"wallet_address" binding:"required"`
}

func (s *Server) handleBalance(c *gin.Context) {
	var req balanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		envelope.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request")
		return
	}
	balance, ok := s.store.balance(req.WalletAddress)
	if !ok {
		envelope.Fail(c, http.StatusNotFound, "WALLET_NOT_FOUND", "wallet not found")
		return
	}
	envelope.Write(c, http.StatusOK, "balance retrieved", gin.H{"balance": balance})
}

type sendRequest struct {
	SenderWallet   string  `json:"sender_wallet" binding:"required"`
	ReceiverWallet string  `json:"receiver_wallet" binding:"required"`
	Amount         float64 `json:"amount" binding:"required"`
	Fee            float64 `json:"fee"`
	Note           string  `json:"note"`
	Signature      string  `json:"signature"`
}

func (s *Server) handleSend(c *gin.Context) {
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		envelope.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request")
		return
	}

	acc := currentAccount(c)
	if req.SenderWallet != acc.wallet.WalletAddress {
		envelope.Fail(c, http.StatusForbidden, "WALLET_MISMATCH", "sender wallet does not belong to caller")
		return
	}
	if req.Amount < domain.MinTransactionAmount || req.Amount > domain.MaxTransactionAmount {
		envelope.Fail(c, http.StatusBadRequest, "INVALID_AMOUNT", "amount out of range")
		return
	}
	if req.Fee < 0 || req.Fee > domain.MaxTransactionFee {
		envelope.Fail(c, http.StatusBadRequest, "INVALID_FEE", "fee out of range")
		return
	}

	tx, err := s.store.submitTransaction(req.SenderWallet, req.ReceiverWallet, req.Amount, req.Fee, req.Note, req.Signature)
	if err != nil {
		// business rejections ride a success-status HTTP response with an
		// error envelope, mirroring the production backend
		envelope.Fail(c, http.StatusOK, "TRANSACTION_REJECTED", err.Error())
		return
	}
	s.store.appendLog("TRANSACTION", "transaction submitted", req.SenderWallet)

	envelope.Write(c, http.StatusOK, "transaction submitted", ports.SendReceipt{
		TransactionHash: tx.TransactionHash,
		Status:          tx.Status,
	})
}

func intQuery(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}

func (s *Server) handleHistory(c *gin.Context) {
	address := c.Query("wallet_address")
	if address == "" {
		envelope.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "wallet_address is required")
		return
	}
	txns := s.store.history(address, intQuery(c, "limit", 10), intQuery(c, "offset", 0))
	envelope.Write(c, http.StatusOK, "history retrieved", gin.H{"transactions": txns})
}

func (s *Server) handlePending(c *gin.Context) {
	envelope.Write(c, http.StatusOK, "pending transactions retrieved", gin.H{
		"transactions": s.store.pending(),
	})
}

func (s *Server) handleBlocks(c *gin.Context) {
	blocks := s.store.blockPage(intQuery(c, "limit", 10), intQuery(c, "offset", 0))
	envelope.Write(c, http.StatusOK, "blocks retrieved", gin.H{"blocks": blocks})
}

func (s *Server) handleBlock(c *gin.Context) {
	block, txns, ok := s.store.blockByHash(c.Param("hash"))
	if !ok {
		envelope.Fail(c, http.StatusNotFound, "BLOCK_NOT_FOUND", "block not found")
		return
	}
	envelope.Write(c, http.StatusOK, "block retrieved", domain.BlockDetail{
		Block:        *block,
		Transactions: txns,
	})
}

type mineRequest struct {
	MinerAddress string `json:"miner_address" binding:"required"`
}

func (s *Server) handleMine(c *gin.Context) {
	var req mineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		envelope.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request")
		return
	}
	block, err := s.store.mine(req.MinerAddress)
	if err != nil {
		envelope.Fail(c, http.StatusInternalServerError, "MINE_ERROR", err.Error())
		return
	}
	s.store.appendLog("MINING", "block mined", req.MinerAddress)
	envelope.Write(c, http.StatusOK, "block mined", gin.H{"block": block})
}

func (s *Server) handleMonthlyReport(c *gin.Context) {
	address := c.Query("wallet_address")
	if address == "" {
		envelope.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "wallet_address is required")
		return
	}
	months := report.Aggregate(s.store.transactionsFor(address), address)
	envelope.Write(c, http.StatusOK, "monthly report retrieved", gin.H{"months": months})
}

func (s *Server) handleZakatReport(c *gin.Context) {
	address := c.Query("wallet_address")
	if address == "" {
		envelope.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "wallet_address is required")
		return
	}
	balance, ok := s.store.balance(address)
	if !ok {
		envelope.Fail(c, http.StatusNotFound, "WALLET_NOT_FOUND", "wallet not found")
		return
	}
	records := []domain.ZakatRecord{report.CurrentZakat(balance, time.Now())}
	envelope.Write(c, http.StatusOK, "zakat report retrieved", gin.H{"records": records})
}

type beneficiaryRequest struct {
	BeneficiaryWalletID string `json:"beneficiary_wallet_id" binding:"required"`
	Nickname            string `json:"nickname" binding:"required"`
}

func (s *Server) handleAddBeneficiary(c *gin.Context) {
	var req beneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		envelope.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request")
		return
	}
	acc := currentAccount(c)
	b := s.store.addBeneficiary(acc.user.ID, req.BeneficiaryWalletID, req.Nickname)
	envelope.Write(c, http.StatusCreated, "beneficiary added", b)
}

func (s *Server) handleListBeneficiaries(c *gin.Context) {
	acc := currentAccount(c)
	envelope.Write(c, http.StatusOK, "beneficiaries retrieved", gin.H{
		"beneficiaries": s.store.listBeneficiaries(acc.user.ID),
	})
}

func (s *Server) handleSystemLogs(c *gin.Context) {
	logs := s.store.logPage(c.DefaultQuery("type", "ALL"), intQuery(c, "limit", 50), intQuery(c, "offset", 0))
	envelope.Write(c, http.StatusOK, "logs retrieved", gin.H{"logs": logs})
}

func (s *Server) handleLogStats(c *gin.Context) {
	envelope.Write(c, http.StatusOK, "log stats retrieved", s.store.logStats())
}

func (s *Server) handleHealth(c *gin.Context) {
	envelope.Write(c, http.StatusOK, "system healthy", domain.SystemHealth{
		Status:    "ok",
		Uptime:    s.store.uptime().Round(time.Second).String(),
		Timestamp: time.Now(),
	})
}
