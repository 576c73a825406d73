package dto

import "github.com/shopspring/decimal"

// MarcaRequest criação/atualização de marca.
type MarcaRequest struct {
	Nome string `json:"nome"`
}

// MarcaResponse marca persistida.
type MarcaResponse struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// ModeloRequest criação/atualização de modelo de celular.
type ModeloRequest struct {
	NomeModelo string `json:"nome_modelo"`
	IDMarca    int64  `json:"id_marca"`
}

// ModeloResponse modelo com o nome da marca resolvido.
type ModeloResponse struct {
	ID         int64  `json:"id"`
	NomeModelo string `json:"nome_modelo"`
	MarcaNome  string `json:"marca_nome"`
}

// ProdutoRequest criação/atualização de produto.
type ProdutoRequest struct {
	Nome            string          `json:"nome"`
	Tipo            string          `json:"tipo"`
	Material        *string         `json:"material"`
	PrecoVenda      decimal.Decimal `json:"preco_venda"`
	IDModeloCelular int64           `json:"id_modelo_celular"`
}

// ProdutoResponse linha de listagem de produtos.
type ProdutoResponse struct {
	ID            int64           `json:"id"`
	Nome          string          `json:"nome"`
	Tipo          string          `json:"tipo"`
	Material      *string         `json:"material"`
	PrecoVenda    decimal.Decimal `json:"preco_venda"`
	ModeloCelular string          `json:"modelo_celular"`
}

// ProdutoAdminResponse detalhe de produto para edição (ids crus).
type ProdutoAdminResponse struct {
	ID              int64           `json:"id"`
	Nome            string          `json:"nome"`
	Tipo            string          `json:"tipo"`
	Material        *string         `json:"material"`
	PrecoVenda      decimal.Decimal `json:"preco_venda"`
	IDModeloCelular int64           `json:"id_modelo_celular"`
}

// FornecedorRequest criação/atualização de fornecedor.
type FornecedorRequest struct {
	Nome            string  `json:"nome"`
	ContatoTelefone *string `json:"contato_telefone"`
	ContatoEmail    *string `json:"contato_email"`
}

// FornecedorResponse fornecedor persistido.
type FornecedorResponse struct {
	ID              int64   `json:"id"`
	Nome            string  `json:"nome"`
	ContatoTelefone *string `json:"contato_telefone"`
	ContatoEmail    *string `json:"contato_email"`
}

// AssociacaoFornecedorRequest vincula um fornecedor a um produto.
type AssociacaoFornecedorRequest struct {
	IDFornecedor int64 `json:"id_fornecedor"`
}

// VariacaoSelecionadaResponse variação em foco na página pública de detalhes.
type VariacaoSelecionadaResponse struct {
	ID                  int64   `json:"id"`
	Cor                 string  `json:"cor"`
	Quantidade          int64   `json:"quantidade"`
	DisponivelEncomenda bool    `json:"disponivel_encomenda"`
	URLFoto             *string `json:"url_foto"`
}

// OutraVariacaoResponse variação irmã (outra cor do mesmo produto).
type OutraVariacaoResponse struct {
	ID      int64   `json:"id"`
	Cor     string  `json:"cor"`
	URLFoto *string `json:"url_foto"`
}

// DetalhesProdutoPublicoResponse página pública de produto.
type DetalhesProdutoPublicoResponse struct {
	ProdutoNome         string                      `json:"produto_nome"`
	ModeloCelular       string                      `json:"modelo_celular"`
	PrecoVenda          decimal.Decimal             `json:"preco_venda"`
	VariacaoSelecionada VariacaoSelecionadaResponse `json:"variacao_selecionada"`
	OutrasVariacoes     []OutraVariacaoResponse     `json:"outras_variacoes"`
}
