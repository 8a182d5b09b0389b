// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "document_type", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "filename", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_patients_documents",
				Columns:    []*schema.Column{DocumentsColumns[6]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_patient_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[6]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "contact_info", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "anamnesis", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patient_last_name_first_name",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[4], PatientsColumns[3]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "session_type", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "completed", "cancelled", "no_show"}, Default: "scheduled"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "therapist_id", Type: field.TypeUUID},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sessions_patients_sessions",
				Columns:    []*schema.Column{SessionsColumns[8]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "sessions_therapists_sessions",
				Columns:    []*schema.Column{SessionsColumns[9]},
				RefColumns: []*schema.Column{TherapistsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "session_patient_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[8], SessionsColumns[3]},
			},
			{
				Name:    "session_therapist_id_status_start_time",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[9], SessionsColumns[6], SessionsColumns[3]},
			},
			{
				Name:    "session_status_start_time",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[6], SessionsColumns[3]},
			},
		},
	}
	// TherapistsColumns holds the columns for the "therapists" table.
	TherapistsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "specialization", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
	}
	// TherapistsTable holds the schema information for the "therapists" table.
	TherapistsTable = &schema.Table{
		Name:       "therapists",
		Columns:    TherapistsColumns,
		PrimaryKey: []*schema.Column{TherapistsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "therapists_users_user",
				Columns:    []*schema.Column{TherapistsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "first_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "last_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "therapist"}},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		PatientsTable,
		SessionsTable,
		TherapistsTable,
		UsersTable,
	}
)

func init() {
	DocumentsTable.ForeignKeys[0].RefTable = PatientsTable
	SessionsTable.ForeignKeys[0].RefTable = PatientsTable
	SessionsTable.ForeignKeys[1].RefTable = TherapistsTable
	TherapistsTable.ForeignKeys[0].RefTable = UsersTable
}
