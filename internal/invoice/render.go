package invoice

import (
	"html/template"
	"io"
)

// Render writes the document as a printable A4 HTML page.
func Render(w io.Writer, doc Document) error {
	return pageTmpl.Execute(w, doc)
}

var pageTmpl = template.Must(template.New("invoice").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.InvoiceNo}}</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: Arial, sans-serif; font-size: 10px; line-height: 1.4; color: #000; background: #fff; }
  .page { width: 210mm; min-height: 297mm; padding: 8mm 10mm; margin: 0 auto; position: relative; display: flex; flex-direction: column; }
  .watermark { position: absolute; top: 0; left: 0; right: 0; bottom: 0; display: flex; align-items: center; justify-content: center; pointer-events: none; z-index: 0; }
  .watermark span { font-size: 64px; font-weight: bold; color: rgba(37, 99, 235, 0.12); transform: rotate(-30deg); }
  .content { position: relative; z-index: 1; flex: 1; display: flex; flex-direction: column; }
  table { width: 100%; border-collapse: collapse; }
  .header td { vertical-align: top; font-size: 8px; }
  .header .office { width: 28%; }
  .header .brand { width: 44%; text-align: center; }
  .header .factory { width: 28%; text-align: right; }
  .brand .company { font-size: 16px; font-weight: bold; color: #2563eb; margin-bottom: 4px; }
  .brand .badge { display: inline-block; border: 2px solid #000; padding: 2px 20px; border-radius: 6px; font-size: 16px; font-weight: bold; }
  .meta { display: flex; justify-content: space-between; font-size: 8px; margin-bottom: 6px; }
  .mushak { border-top: 1px solid #000; padding-top: 4px; margin-bottom: 4px; }
  .mushak .rule { font-size: 8px; }
  .depot { text-align: center; margin-bottom: 2px; font-weight: 600; }
  .subtitle { text-align: center; margin-bottom: 8px; }
  .subtitle .invoice { font-size: 13px; font-weight: 600; margin-top: 2px; }
  .info { margin-bottom: 10px; font-size: 9px; }
  .info td.half { width: 50%; vertical-align: top; }
  .info td.label { width: 90px; font-weight: 600; padding: 1px 0; }
  .info td.label.bold, .info td.value.bold { font-weight: bold; }
  .products { font-size: 8.5px; margin-bottom: 6px; }
  .products th { padding: 3px 2px; font-weight: 600; border-top: 1.5px solid #000; border-bottom: 1.5px solid #000; }
  .products td { padding: 3px 2px; border-bottom: 1px dotted #9ca3af; }
  .products .bonus { color: #4b5563; font-style: italic; }
  .num { text-align: right; }
  .mid { text-align: center; }
  .separator { border-top: 2px dashed #000; margin-bottom: 8px; }
  .totals { display: flex; justify-content: space-between; margin-bottom: 12px; font-size: 9px; }
  .totals .words { max-width: 50%; }
  .totals .figures { min-width: 180px; }
  .totals .line { display: flex; justify-content: space-between; margin-bottom: 1px; }
  .totals .net { display: flex; justify-content: space-between; font-weight: bold; border-top: 1px solid #000; padding-top: 3px; margin-top: 3px; }
  .footer { margin-top: auto; }
  .footer .depot-sign { border-top: 2px solid #000; padding-top: 8px; text-align: right; margin-bottom: 40px; font-size: 9px; }
  .signatures { display: flex; justify-content: space-between; padding-bottom: 10mm; }
  .signatures div { text-align: center; }
  .signatures .rule { border-top: 1px solid #000; width: 120px; margin: 0 auto 3px; }
  .signatures span { font-size: 8px; font-weight: 500; }
  @media print { body { print-color-adjust: exact; -webkit-print-color-adjust: exact; } @page { margin: 0; } }
</style>
</head>
<body>
<div class="page">
  <div class="watermark"><span>{{.Company.Name}}</span></div>
  <div class="content">
    <table class="header">
      <tr>
        <td class="office">
          <p style="font-weight:bold">Corporate Office:</p>
          {{range .Company.CorporateOffice}}<p>{{.}}</p>{{end}}
        </td>
        <td class="brand">
          <div class="company">{{.Company.Name}}</div>
          <div class="badge">INVOICE</div>
        </td>
        <td class="factory">
          <p style="font-weight:bold">Factory:</p>
          {{range .Company.Factory}}<p>{{.}}</p>{{end}}
        </td>
      </tr>
    </table>
    <div class="meta">
      <span>Printed On: {{.PrintedAt}}</span>
      <span>Page 1 of 1</span>
    </div>
    <div class="mushak">
      <table>
        <tr>
          <td style="width:25%"></td>
          <td style="text-align:center;width:50%">
            <p style="font-weight:600">{{.Company.Name}}</p>
            <p class="rule">[Clauses (c) and (f) of sub-Rule (1) of Rule 40]</p>
          </td>
          <td style="text-align:right;width:25%;font-weight:600">MUSHAK-6.3</td>
        </tr>
      </table>
    </div>
    <div class="depot">Depot: {{.Company.Depot}}</div>
    <div class="subtitle">
      <p style="font-size:9px">Contact No: {{.ContactNo}}</p>
      <p class="invoice">Invoice</p>
    </div>
    <table class="info">
      <tr>
        <td class="half" style="padding-right:16px">
          <table>
            {{range .CustomerRows}}
            <tr>
              <td class="label{{if .Bold}} bold{{end}}">{{.Label}}</td>
              <td class="value{{if .Bold}} bold{{end}}">: {{.Value}}</td>
            </tr>
            {{end}}
          </table>
        </td>
        <td class="half">
          <table>
            {{range .InvoiceRows}}
            <tr>
              <td class="label">{{.Label}}</td>
              <td class="value">: {{.Value}}</td>
            </tr>
            {{end}}
          </table>
        </td>
      </tr>
    </table>
    <table class="products">
      <thead>
        <tr>
          <th style="text-align:left;width:28%">Products Name</th>
          <th class="mid" style="width:10%">Pack Size</th>
          <th class="mid" style="width:6%">Qty</th>
          <th class="num" style="width:10%">Unit TP/SP</th>
          <th class="num" style="width:8%">Unit VAT</th>
          <th class="num" style="width:10%">TP+VAT</th>
          <th class="mid" style="width:6%">Bonus</th>
          <th class="mid" style="width:6%">VAT%</th>
          <th class="num" style="width:8%">Dis. Amt</th>
          <th class="num" style="width:10%">Total TP/SP</th>
        </tr>
      </thead>
      <tbody>
        {{range .Lines}}
        <tr{{if .IsBonus}} class="bonus"{{end}}>
          <td>{{.Name}} ({{.PackSize}}){{if .IsBonus}} [Bonus]{{end}}</td>
          <td class="mid">{{.PackSize}}</td>
          <td class="mid">{{.Qty}}</td>
          <td class="num">{{.UnitTP.StringFixed 2}}</td>
          <td class="num">{{.UnitVAT.StringFixed 2}}</td>
          <td class="num">{{.TPWithVAT.StringFixed 2}}</td>
          <td class="mid">-</td>
          <td class="mid">0</td>
          <td class="num">{{if .DiscountAmount.IsZero}}0{{else}}{{.DiscountAmount.StringFixed 2}}{{end}}</td>
          <td class="num">{{.TotalTP.StringFixed 2}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
    <div class="separator"></div>
    <div class="totals">
      <div class="words"><span style="font-weight:600">In Words: </span><span>{{.AmountInWords}}</span></div>
      <div class="figures">
        <div class="line"><span>Gross TP</span><span>{{.Breakdown.Subtotal.StringFixed 2}}</span></div>
        <div class="line"><span>Line Item Discount</span><span>-{{.Breakdown.LineItemDiscount.StringFixed 2}}</span></div>
        <div class="line"><span>Group Discount</span><span>-{{.Breakdown.GroupDiscount.StringFixed 2}}</span></div>
        <div class="line"><span>Gross TP (After Disc.)</span><span>{{.Breakdown.GrossAfterDiscount.StringFixed 2}}</span></div>
        <div class="line"><span>Add VAT on TP</span><span>{{.Breakdown.VAT.StringFixed 2}}</span></div>
        <div class="net"><span>Net Payable</span><span>{{.Breakdown.NetPayable.StringFixed 2}}</span></div>
      </div>
    </div>
    <div class="footer">
      <div class="depot-sign">
        <p style="font-weight:bold">{{.Company.Depot}} Depot</p>
        <p>For {{.Company.Name}}</p>
      </div>
      <div class="signatures">
        <div><div class="rule"></div><span>Prepared By</span></div>
        <div><div class="rule"></div><span>Checked By</span></div>
        <div><div class="rule"></div><span>Authorized Signature</span></div>
        <div><div class="rule"></div><span>Customer&#39;s Signature</span></div>
      </div>
    </div>
  </div>
</div>
</body>
</html>
`
