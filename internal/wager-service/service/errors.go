package service

import "errors"

var (
	// Antes de qualquer movimentação de fundos.
	ErrInvalidWallet = errors.New("invalid wallet credentials")

	// O gateway não respondeu à validação; nada diz se as credenciais valem.
	ErrWalletValidation = errors.New("failed to validate wallet")

	// Falha do gateway sem fundos movidos; abortar é seguro.
	ErrInvoiceCreation = errors.New("invoice creation failed")

	// Movimentação tentada e não confirmada; nunca tratar como sucesso.
	ErrPaymentFailed = errors.New("payment failed")

	// Fundos coletados mas a partida fechou antes do registro no ledger.
	// Caso de reconciliação: o chamador precisa ver isso com clareza.
	ErrPaidNotRecorded = errors.New("payment collected but match already closed")
)
