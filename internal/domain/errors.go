package domain

import "errors"

// Erros de domínio (sem dependências externas). Os handlers HTTP traduzem
// cada sentinela para o status code correspondente.
var (
	ErrNaoEncontrado        = errors.New("recurso não encontrado")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
	ErrEntradaInvalida      = errors.New("entrada inválida")
	ErrDuplicado            = errors.New("recurso duplicado")
	ErrNaoAutorizado        = errors.New("não autorizado")
	ErrAcessoNegado         = errors.New("acesso negado")
	ErrConflito             = errors.New("conflito com o estado atual")
	ErrEstoqueInsuficiente  = errors.New("estoque insuficiente")
	ErrEmUso                = errors.New("recurso possui registros vinculados")
)
