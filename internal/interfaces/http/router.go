package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/auth"
	"github.com/catalogo-inteligente/catalogo-api/internal/application/catalogo"
	"github.com/catalogo-inteligente/catalogo-api/internal/application/estoque"
	"github.com/catalogo-inteligente/catalogo-api/internal/application/relatorios"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	MovimentarUC *estoque.MovimentarEstoqueUseCase
	MarcaUC      *catalogo.MarcaUseCase
	ModeloUC     *catalogo.ModeloUseCase
	ProdutoUC    *catalogo.ProdutoUseCase
	FornecedorUC *catalogo.FornecedorUseCase
	VariacaoUC   *catalogo.VariacaoUseCase
	RelatorioUC  *relatorios.UseCase
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/token", authHandler.Login)

	// Catálogo público (vitrine e busca, sem auth)
	catalogoHandler := NewCatalogoHandler(deps.VariacaoUC)
	modeloHandler := NewModeloHandler(deps.ModeloUC)
	app.Get("/catalogo/search", catalogoHandler.Buscar)
	app.Get("/modelos/search", modeloHandler.Buscar)
	app.Get("/produto/detalhes/:variacao_id", catalogoHandler.Detalhes)

	// PDV (protegido, qualquer role)
	pdv := app.Group("/estoque", AuthMiddleware(deps.JWTSecret))
	pdvHandler := NewPDVHandler(deps.MovimentarUC)
	pdv.Post("/:variacao_id/compra", pdvHandler.Comprar)
	pdv.Post("/:variacao_id/:acao", pdvHandler.Movimentar)

	// Administração do catálogo (protegido, admin)
	admin := app.Group("/", AuthMiddleware(deps.JWTSecret), RequireAdmin())

	marcas := admin.Group("/marcas")
	marcaHandler := NewMarcaHandler(deps.MarcaUC)
	marcas.Post("/", marcaHandler.Criar)
	marcas.Get("/", marcaHandler.Listar)
	marcas.Put("/:id", marcaHandler.Atualizar)
	marcas.Delete("/:id", marcaHandler.Deletar)

	modelos := admin.Group("/modelos")
	modelos.Post("/", modeloHandler.Criar)
	modelos.Get("/", modeloHandler.Listar)
	modelos.Put("/:id", modeloHandler.Atualizar)
	modelos.Delete("/:id", modeloHandler.Deletar)

	produtos := admin.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC, deps.VariacaoUC)
	produtos.Post("/", produtoHandler.Criar)
	produtos.Get("/", produtoHandler.Listar)
	produtos.Get("/:id", produtoHandler.Detalhes)
	produtos.Put("/:id", produtoHandler.Atualizar)
	produtos.Delete("/:id", produtoHandler.Deletar)
	produtos.Get("/:id/variacoes", produtoHandler.ListarVariacoes)
	produtos.Get("/:id/fornecedores", produtoHandler.ListarFornecedores)
	produtos.Post("/:id/fornecedores", produtoHandler.AssociarFornecedor)
	produtos.Delete("/:id/fornecedores/:fornecedor_id", produtoHandler.DesassociarFornecedor)

	variacoes := admin.Group("/variacoes")
	variacaoHandler := NewVariacaoHandler(deps.VariacaoUC)
	variacoes.Post("/", variacaoHandler.Criar)
	variacoes.Put("/:id", variacaoHandler.Atualizar)
	variacoes.Delete("/:id", variacaoHandler.Deletar)

	fornecedores := admin.Group("/fornecedores")
	fornecedorHandler := NewFornecedorHandler(deps.FornecedorUC)
	fornecedores.Post("/", fornecedorHandler.Criar)
	fornecedores.Get("/", fornecedorHandler.Listar)
	fornecedores.Put("/:id", fornecedorHandler.Atualizar)
	fornecedores.Delete("/:id", fornecedorHandler.Deletar)

	relatoriosGroup := admin.Group("/relatorios")
	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC)
	relatoriosGroup.Get("/movimentacoes-pdv", relatorioHandler.Movimentacoes)
	relatoriosGroup.Get("/movimentacoes-pdv/pdf", relatorioHandler.MovimentacoesPDF)
	relatoriosGroup.Get("/dashboard/metricas-financeiras", relatorioHandler.Metricas)
	relatoriosGroup.Get("/dashboard/vendas-por-dia", relatorioHandler.VendasPorDia)
	relatoriosGroup.Get("/dashboard/top-produtos", relatorioHandler.TopProdutos)
}
