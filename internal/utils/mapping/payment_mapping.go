package mapping

import (
	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	"github.com/SscSPs/scan_payroll_app/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		StaffID:       d.StaffID,
		Amount:        d.Amount,
		PaymentDate:   d.PaymentDate,
		PaymentMode:   string(d.PaymentMode),
		TransactionID: d.TransactionID,
		AccountNo:     d.AccountDetails.AccountNo,
		IFSCCode:      d.AccountDetails.IFSCCode,
		BankName:      d.AccountDetails.BankName,
		Remarks:       d.Remarks,
		Status:        string(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:     m.PaymentID,
		StaffID:       m.StaffID,
		Amount:        m.Amount,
		PaymentDate:   m.PaymentDate,
		PaymentMode:   domain.PaymentMode(m.PaymentMode),
		TransactionID: m.TransactionID,
		AccountDetails: domain.PaymentAccount{
			AccountNo: m.AccountNo,
			IFSCCode:  m.IFSCCode,
			BankName:  m.BankName,
		},
		Remarks:     m.Remarks,
		Status:      domain.PaymentStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to a slice of domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
