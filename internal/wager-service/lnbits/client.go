package lnbits

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	lndto "github.com/radieske/lightning-wager-poc/internal/wager-service/lnbits/dto"
)

// ErrWalletNotFound indica que a chave informada não resolve para uma carteira real.
var ErrWalletNotFound = errors.New("wallet not found")

// Client fala com a API v1 do LNbits. Cada chamada é uma requisição HTTP
// bloqueante com timeout próprio; nenhuma chamada é idempotente nem re-tentada.
type Client struct {
	BaseURL string // ex: "https://demo.lnbits.com/api/v1"
	HTTP    *http.Client
}

func New(host string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: "https://" + host + "/api/v1",
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// CreateAccount cria uma conta LNbits (sem autenticação).
func (c *Client) CreateAccount(ctx context.Context, name string) (*lndto.Account, error) {
	var out lndto.Account
	err := c.do(ctx, http.MethodPost, "/account", "", map[string]any{"name": name}, http.StatusOK, &out)
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	return &out, nil
}

// CreateWallet cria uma carteira associada à conta dona da API key.
func (c *Client) CreateWallet(ctx context.Context, accountAdminKey, name string) (*lndto.Wallet, error) {
	var out lndto.Wallet
	err := c.do(ctx, http.MethodPost, "/wallet", accountAdminKey, map[string]any{"name": name}, http.StatusOK, &out)
	if err != nil {
		return nil, fmt.Errorf("create wallet: %w", err)
	}
	return &out, nil
}

// GetWallet busca a carteira pela inkey ou adminkey; ErrWalletNotFound em 404.
func (c *Client) GetWallet(ctx context.Context, walletKey string) (*lndto.WalletInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/wallet", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", walletKey)

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, ErrWalletNotFound
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get wallet: lnbits http %d", res.StatusCode)
	}

	var out lndto.WalletInfo
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	return &out, nil
}

// CreateInvoice cria uma cobrança na carteira dona da walletKey.
// A API responde 201 na criação; qualquer outro status é falha.
func (c *Client) CreateInvoice(ctx context.Context, walletKey string, amountSats int64, memo string) (*lndto.Invoice, error) {
	body := map[string]any{
		"out":    false,
		"amount": amountSats,
		"memo":   memo,
	}
	var out lndto.Invoice
	if err := c.do(ctx, http.MethodPost, "/payments", walletKey, body, http.StatusCreated, &out); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return &out, nil
}

// PayInvoice quita um bolt11 a partir da carteira da adminKey (inkey não funciona).
func (c *Client) PayInvoice(ctx context.Context, walletAdminKey, bolt11 string) (*lndto.Payment, error) {
	body := map[string]any{
		"out":    true,
		"bolt11": bolt11,
	}
	var out lndto.Payment
	if err := c.do(ctx, http.MethodPost, "/payments", walletAdminKey, body, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("pay invoice: %w", err)
	}
	return &out, nil
}

// do executa uma chamada JSON autenticada via X-Api-Key e decodifica a resposta.
func (c *Client) do(ctx context.Context, method, path, apiKey string, body any, wantStatus int, out any) error {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-Api-Key", apiKey)
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != wantStatus {
		return fmt.Errorf("lnbits http %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(out)
}
