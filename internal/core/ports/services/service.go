package services

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality and is used
// throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Member      MemberSvcFacade
	Saving      SavingSvcFacade
	Loan        LoanSvcFacade
	Payment     PaymentSvcFacade
	Fine        FineSvcFacade
	Expenditure ExpenditureSvcFacade
	Chat        ChatSvcFacade
	User        UserSvcFacade
	Auth        AuthSvcFacade
	Settings    SettingsSvcFacade
	Backup      BackupSvcFacade
	Reporting   ReportingSvcFacade
}
