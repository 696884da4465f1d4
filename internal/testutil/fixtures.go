package testutil

// Canned documents shaped like the Tesouro Direto listing page and bond API.
const (
	PageURL = "https://www.tesourodireto.com.br/titulos/precos-e-taxas.htm"
	APIURL  = "https://www.tesourodireto.com.br/json/br/com/b3/tesourodireto/service/api/treasurybondsinfo.json"
)

// EmbeddedJSONPage carries the listing in a window.TD.titulos assignment.
const EmbeddedJSONPage = `<!DOCTYPE html>
<html>
<head>
<script>var analytics = {};</script>
<script>
window.TD = window.TD || {};
window.TD.titulos = [
  {"nome": "Tesouro Prefixado 2027", "vencimento": "01/01/2027", "rentabilidade": "13,45%"},
  {"nome": "Tesouro Prefixado 2031", "vencimento": "01/01/2031", "rentabilidade": "13,62%"},
  {"nome": "Tesouro IPCA+ 2029", "vencimento": "15/05/2029", "rentabilidade": "7,38%"},
  {"nome": "Tesouro IPCA+ 2035", "vencimento": "2035", "rentabilidade": "7,10%"},
  {"nome": "Tesouro Selic 2029", "vencimento": "01/03/2029", "rentabilidade": "0,05%"}
];
</script>
</head>
<body><div class="card-title">Tesouro Prefixado 2033</div><div>14,00%</div></body>
</html>`

// MarkupPage has no embedded JSON; bonds are laid out in title/rate divs.
const MarkupPage = `<!DOCTYPE html>
<html>
<body>
<section>
  <div class="td-card card-title">Tesouro Prefixado 2029</div>
  <div class="label">Rentabilidade anual</div>
  <div class="rate">13,20%</div>
</section>
<section>
  <div class="tesouro-ipca">Tesouro IPCA+ 01/01/2030
    <div class="rate">7,25 %</div>
  </div>
</section>
<section>
  <div class="titulo">Tesouro Selic 2029</div>
  <div>0,10%</div>
</section>
<section>
  <div class="card-title">Tesouro Prefixado sem data</div>
  <div>12,00%</div>
</section>
</body>
</html>`

// FreeTextPage only exposes bonds in running text.
const FreeTextPage = `<!DOCTYPE html>
<html>
<body>
<p>Tesouro Prefixado 2028 com rentabilidade de 13,10% ao ano.</p>
<p>Tesouro IPCA+ 2032 paga IPCA + 7,05% ao ano.</p>
</body>
</html>`

// EmptyPage contains nothing any page strategy can use.
const EmptyPage = `<!DOCTYPE html><html><body><p>Mercado fechado.</p></body></html>`

// APIPayload mirrors the treasurybondsinfo.json structure.
const APIPayload = `{
  "responseStatus": 200,
  "response": {
    "TrsrBdTradgList": [
      {"TrsrBd": {"nm": "Tesouro Prefixado 2027", "mtrtyDt": "2027-01-01T00:00:00", "anulInvstmtRate": 13.45, "anulRedRate": 13.57}},
      {"TrsrBd": {"nm": "Tesouro Prefixado 2031", "mtrtyDt": "2031-01-01T00:00:00", "anulInvstmtRate": 0, "anulRedRate": 13.70}},
      {"TrsrBd": {"nm": "Tesouro IPCA+ 2029", "mtrtyDt": "2029-05-15T00:00:00", "anulInvstmtRate": 7.38, "anulRedRate": 7.50}},
      {"TrsrBd": {"nm": "Tesouro IPCA+ 2045", "mtrtyDt": "2045-05-15", "anulRedRate": 6.95}},
      {"TrsrBd": {"nm": "Tesouro IPCA+ 2050", "mtrtyDt": "2050-08-15T00:00:00", "anulInvstmtRate": 0, "anulRedRate": 0}},
      {"TrsrBd": {"nm": "", "mtrtyDt": "2033-01-01T00:00:00", "anulInvstmtRate": 13.0}},
      {"TrsrBd": {"nm": "Tesouro Selic 2029", "mtrtyDt": "2029-03-01T00:00:00", "anulInvstmtRate": 0.05}}
    ]
  }
}`
