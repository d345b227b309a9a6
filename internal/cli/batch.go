// Package cli 批处理流程：读取源表，生成总报表与月度报表，可按负责人/月份交互筛选。
package cli

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"propostas/internal/config"
	"propostas/internal/exporter"
	"propostas/internal/model"
	"propostas/internal/parser"
	"propostas/internal/report"
	"propostas/internal/util"
)

// Runner 批处理执行器
type Runner struct {
	cfg      *config.AppConfig
	vocab    report.Vocabulary
	in       *bufio.Scanner
	out      io.Writer
	exporter *exporter.Exporter
}

// NewRunner 创建执行器，输入输出由调用方注入
func NewRunner(cfg *config.AppConfig, vocab report.Vocabulary, in io.Reader, out io.Writer) *Runner {
	r := &Runner{
		cfg:   cfg,
		vocab: vocab,
		in:    bufio.NewScanner(in),
		out:   out,
	}
	r.exporter = exporter.NewExporter().WithProgress(func(ev exporter.ProgressEvent) {
		fmt.Fprintf(r.out, "  [%3d%%] %s\n", ev.Percent, ev.Stage)
	})
	return r
}

// Run 执行完整流程
func (r *Runner) Run() error {
	res, err := parser.LoadWorkbook(r.cfg.Source.Path, r.cfg.Source.Sheet, parser.Options{
		ColumnAliases: r.cfg.Source.ColumnAliases,
	})
	if err != nil {
		return err
	}
	records := res.Records
	if len(res.Dropped) > 0 {
		fmt.Fprintf(r.out, "\nAviso: %d linha(s) ignorada(s) por data inválida\n", len(res.Dropped))
	}

	fmt.Fprintln(r.out, "\nValores únicos na coluna STATUS:")
	fmt.Fprintln(r.out, formatList(report.Statuses(records)))

	fmt.Fprintln(r.out, "\nNegociadores disponíveis:")
	fmt.Fprintln(r.out, formatList(report.Negotiators(records)))

	answer := r.prompt("\nDeseja filtrar por algum negociador específico? (S/N): ")
	if strings.EqualFold(answer, "S") {
		name := r.prompt("Digite o nome do negociador: ")
		records = report.ApplyFilter(records, model.Filter{Negotiator: name})
		fmt.Fprintf(r.out, "\nFiltrando dados para o negociador: %s\n", name)
	}

	general := report.BuildReport(records, r.vocab)
	monthly := report.MonthlyBreakdown(records, r.vocab)

	generalPath := r.cfg.GeneralOutputPath()
	if err := r.exporter.SaveReport(generalPath, general); err != nil {
		return fmt.Errorf("salvar relatório geral: %w", err)
	}
	monthlyPath := r.cfg.MonthlyOutputPath()
	if err := r.exporter.SaveMonthly(monthlyPath, monthly); err != nil {
		return fmt.Errorf("salvar relatório mensal: %w", err)
	}

	fmt.Fprintln(r.out, "\nAnálise concluída!")
	fmt.Fprintf(r.out, "Relatório geral salvo em: %s\n", generalPath)
	fmt.Fprintf(r.out, "Relatório mensal salvo em: %s\n", monthlyPath)

	fmt.Fprintln(r.out, "\nMeses disponíveis para filtro:")
	fmt.Fprintln(r.out, formatList(report.MonthKeys(records)))

	month := r.prompt("\nDigite o mês desejado (formato: MM/YYYY) ou pressione Enter para sair: ")
	if month == "" {
		return nil
	}
	if !report.ValidMonthKey(month) {
		fmt.Fprintf(r.out, "Mês inválido: %s\n", month)
		return nil
	}

	monthReport := report.BuildReport(report.ApplyFilter(records, model.Filter{Month: month}), r.vocab)
	fmt.Fprintf(r.out, "\nResultado para o mês %s:\n", month)
	if monthReport.Empty() {
		fmt.Fprintln(r.out, "Não há dados para exibir com os filtros selecionados.")
	} else if err := PrintReport(r.out, monthReport); err != nil {
		return err
	}

	monthPath := filepath.Join(r.cfg.Output.Dir, exporter.MonthFileName(month))
	if err := r.exporter.SaveReport(monthPath, monthReport); err != nil {
		return fmt.Errorf("salvar relatório do mês: %w", err)
	}
	fmt.Fprintf(r.out, "Relatório do mês salvo em: %s\n", monthPath)
	return nil
}

// prompt 输出提示并读取一行；输入结束视为空行
func (r *Runner) prompt(msg string) string {
	fmt.Fprint(r.out, msg)
	if !r.in.Scan() {
		return ""
	}
	return strings.TrimSpace(r.in.Text())
}

// PrintReport 以对齐表格输出报表
func PrintReport(w io.Writer, rep model.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(exporter.ReportHeaders(rep.Statuses), "\t")+"\t")
	for _, row := range rep.Rows {
		cells := []string{row.Negotiator, fmt.Sprint(row.Approved), fmt.Sprint(row.Denied)}
		for _, s := range rep.Statuses {
			cells = append(cells, fmt.Sprint(report.OtherCount(row, s)))
		}
		cells = append(cells, fmt.Sprint(row.Total), util.FormatRate(row.ApprovalRate))
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}
	return tw.Flush()
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = "'" + it + "'"
	}
	return "[" + strings.Join(quoted, " ") + "]"
}
