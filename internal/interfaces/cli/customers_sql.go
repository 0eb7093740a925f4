package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
)

// customersSQLHeader columnas esperadas del CSV, en este orden.
var customersSQLHeader = []string{"name", "email", "image_url"}

func newCustomersSQLCmd() *cobra.Command {
	var (
		charset string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "customers-sql <clientes.csv>",
		Short: "Genera un script SQL de clientes a partir de un CSV",
		Long: "Lee un CSV con cabecera name,email,image_url (UTF-8 o ISO-8859-1, típico de exportaciones de Excel) " +
			"y escribe los INSERT con un UUID nuevo por cliente.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("abrir CSV: %w", err)
			}
			defer f.Close()

			in, err := decodeCharset(f, charset)
			if err != nil {
				return err
			}
			customers, err := readCustomersCSV(in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outPath != "" {
				file, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("crear archivo: %w", err)
				}
				defer file.Close()
				out = file
			}
			if err := writeCustomersSQL(out, customers); err != nil {
				return err
			}
			if outPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Generado %s: %d clientes\n", outPath, len(customers))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&charset, "charset", "utf-8", "Codificación del CSV (utf-8, iso-8859-1)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Archivo de salida (por defecto stdout)")

	return cmd
}

func decodeCharset(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
		return r, nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("charset no soportado %q (utf-8, iso-8859-1, windows-1252)", charset)
	}
}

// readCustomersCSV exige la cabecera exacta y descarta filas sin nombre o email.
func readCustomersCSV(r io.Reader) ([]entity.Customer, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("CSV vacío")
		}
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	if len(header) != len(customersSQLHeader) {
		return nil, fmt.Errorf("cabecera esperada %s", strings.Join(customersSQLHeader, ","))
	}
	for i, col := range header {
		if !strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(col, "\ufeff")), customersSQLHeader[i]) {
			return nil, fmt.Errorf("cabecera esperada %s", strings.Join(customersSQLHeader, ","))
		}
	}

	var customers []entity.Customer
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer fila: %w", err)
		}
		name, email := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])
		if name == "" || email == "" {
			continue
		}
		customers = append(customers, entity.Customer{
			ID:       uuid.New().String(),
			Name:     name,
			Email:    email,
			ImageURL: strings.TrimSpace(rec[2]),
		})
	}
	return customers, nil
}

func writeCustomersSQL(w io.Writer, customers []entity.Customer) error {
	if len(customers) == 0 {
		return fmt.Errorf("el CSV no tiene clientes válidos")
	}
	var b strings.Builder
	b.WriteString("-- Clientes generados desde CSV\n")
	b.WriteString("INSERT INTO customers (id, name, email, image_url) VALUES\n")
	for i, c := range customers {
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', '%s')", c.ID, escapeSQL(c.Name), escapeSQL(c.Email), escapeSQL(c.ImageURL))
		if i < len(customers)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}
	b.WriteString("ON CONFLICT (id) DO NOTHING;\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
