package cli

import "github.com/jhoicas/invoices-dashboard/internal/domain/entity"

// placeholderPassword password en claro del usuario de ejemplo; se hashea antes de insertar.
const placeholderPassword = "123456"

var placeholderUsers = []entity.User{
	{ID: "410544b2-4001-4271-9855-fec4b6a6442a", Name: "User", Email: "user@nextmail.com"},
}

var placeholderCustomers = []entity.Customer{
	{ID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
	{ID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
	{ID: "3958dc9e-742f-4377-85e9-fec4b6a6442a", Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
	{ID: "76d65c26-f784-44a2-ac19-586678f7c2f2", Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
	{ID: "cc27c14a-0acf-4f4a-a6c9-d45682c144b9", Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
	{ID: "13d07535-c59e-4157-a011-f8d2ef4e0cbb", Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
}

// Montos en centavos.
var placeholderInvoices = []entity.Invoice{
	{ID: "5c6f1a0e-0c5e-4a43-9f33-2b7f0d0b0001", CustomerID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Amount: 15795, Status: entity.InvoiceStatusPending, Date: "2022-12-06"},
	{ID: "5c6f1a0e-0c5e-4a43-9f33-2b7f0d0b0002", CustomerID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Amount: 20348, Status: entity.InvoiceStatusPending, Date: "2022-11-14"},
	{ID: "5c6f1a0e-0c5e-4a43-9f33-2b7f0d0b0003", CustomerID: "cc27c14a-0acf-4f4a-a6c9-d45682c144b9", Amount: 3040, Status: entity.InvoiceStatusPaid, Date: "2022-10-29"},
	{ID: "5c6f1a0e-0c5e-4a43-9f33-2b7f0d0b0004", CustomerID: "76d65c26-f784-44a2-ac19-586678f7c2f2", Amount: 44800, Status: entity.InvoiceStatusPaid, Date: "2023-09-10"},
	{ID: "5c6f1a0e-0c5e-4a43-9f33-2b7f0d0b0005", CustomerID: "13d07535-c59e-4157-a011-f8d2ef4e0cbb", Amount: 34577, Status: entity.InvoiceStatusPending, Date: "2023-08-05"},
	{ID: "5c6f1a0e-0c5e-4a43-9f33-2b7f0d0b0006", CustomerID: "3958dc9e-742f-4377-85e9-fec4b6a6442a", Amount: 54246, Status: entity.InvoiceStatusPending, Date: "2023-07-16"},
	{ID: "5c6f1a0e-0c5e-4a43-9f33-2b7f0d0b0007", CustomerID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Amount: 666, Status: entity.InvoiceStatusPending, Date: "2023-06-27"},
	{ID: "5c6f1a0e-0c5e-4a43-9f33-2b7f0d0b0008", CustomerID: "76d65c26-f784-44a2-ac19-586678f7c2f2", Amount: 32545, Status: entity.InvoiceStatusPaid, Date: "2023-06-09"},
	{ID: "5c6f1a0e-0c5e-4a43-9f33-2b7f0d0b0009", CustomerID: "cc27c14a-0acf-4f4a-a6c9-d45682c144b9", Amount: 1250, Status: entity.InvoiceStatusPaid, Date: "2023-06-17"},
	{ID: "5c6f1a0e-0c5e-4a43-9f33-2b7f0d0b0010", CustomerID: "13d07535-c59e-4157-a011-f8d2ef4e0cbb", Amount: 8546, Status: entity.InvoiceStatusPaid, Date: "2023-06-07"},
	{ID: "5c6f1a0e-0c5e-4a43-9f33-2b7f0d0b0011", CustomerID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Amount: 500, Status: entity.InvoiceStatusPaid, Date: "2023-08-19"},
	{ID: "5c6f1a0e-0c5e-4a43-9f33-2b7f0d0b0012", CustomerID: "13d07535-c59e-4157-a011-f8d2ef4e0cbb", Amount: 8945, Status: entity.InvoiceStatusPaid, Date: "2023-06-03"},
	{ID: "5c6f1a0e-0c5e-4a43-9f33-2b7f0d0b0013", CustomerID: "3958dc9e-742f-4377-85e9-fec4b6a6442a", Amount: 1000, Status: entity.InvoiceStatusPaid, Date: "2022-06-05"},
}
