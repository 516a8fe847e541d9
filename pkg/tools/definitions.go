package tools

// Fixed vocabularies of the Volkern API. The values are part of the tool
// contract and must match the remote side byte for byte.
var (
	leadEstados      = []string{"nuevo", "contactado", "calificado", "negociacion", "cliente", "perdido"}
	citaEstados      = []string{"pendiente", "confirmada", "cancelada", "completada"}
	citaAcciones     = []string{"confirmar", "cancelar", "reagendar", "completar"}
	taskEstados      = []string{"pendiente", "en_progreso", "completada"}
	taskPrioridades  = []string{"baja", "media", "alta"}
	mensajeTipos     = []string{"texto", "plantilla"}
	interactionTipos = []string{"llamada", "email", "whatsapp", "visita", "otro"}
)

// All tool definitions as a single source of truth
var (
	ListLeads = ToolDef{
		Name:        "volkern_list_leads",
		Description: ListLeadsPrompt,
		Title:       "List Leads",
		Params: []ParamDef{
			{
				Name:        "estado",
				Type:        ParamTypeString,
				Description: "Filter by pipeline stage",
				Required:    false,
				Enum:        leadEstados,
			},
			{
				Name:        "fuente",
				Type:        ParamTypeString,
				Description: "Filter by acquisition source (e.g., 'instagram', 'web', 'referido')",
				Required:    false,
			},
			{
				Name:        "search",
				Type:        ParamTypeString,
				Description: "Free-text search across name, phone and email",
				Required:    false,
			},
			{
				Name:        "page",
				Type:        ParamTypeNumber,
				Description: "Page number, starting at 1",
				Required:    false,
			},
			{
				Name:        "limit",
				Type:        ParamTypeNumber,
				Description: "Maximum number of leads per page",
				Required:    false,
			},
		},
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   true,
	}

	GetLead = ToolDef{
		Name:        "volkern_get_lead",
		Description: GetLeadPrompt,
		Title:       "Get Lead",
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   true,
		Params: []ParamDef{
			{
				Name:        "leadId",
				Type:        ParamTypeString,
				Description: "Lead identifier, exactly as returned by volkern_list_leads",
				Required:    true,
			},
		},
	}

	CreateLead = ToolDef{
		Name:        "volkern_create_lead",
		Description: CreateLeadPrompt,
		Title:       "Create Lead",
		ReadOnly:    false,
		Destructive: false,
		Idempotent:  false,
		OpenWorld:   true,
		Params: []ParamDef{
			{
				Name:        "nombre",
				Type:        ParamTypeString,
				Description: "Full name of the lead",
				Required:    true,
			},
			{
				Name:        "telefono",
				Type:        ParamTypeString,
				Description: "Phone number, including country code when known",
				Required:    false,
			},
			{
				Name:        "email",
				Type:        ParamTypeString,
				Description: "Email address",
				Required:    false,
			},
			{
				Name:        "estado",
				Type:        ParamTypeString,
				Description: "Initial pipeline stage. Omit to let the API default to 'nuevo'.",
				Required:    false,
				Enum:        leadEstados,
			},
			{
				Name:        "fuente",
				Type:        ParamTypeString,
				Description: "Acquisition source (e.g., 'instagram', 'web', 'referido')",
				Required:    false,
			},
			{
				Name:        "servicioInteres",
				Type:        ParamTypeString,
				Description: "Identifier of the service the lead asked about, from volkern_list_servicios",
				Required:    false,
			},
			{
				Name:        "etiquetas",
				Type:        ParamTypeStringArray,
				Description: "Free-form labels to attach to the lead",
				Required:    false,
			},
			{
				Name:        "notas",
				Type:        ParamTypeString,
				Description: "Initial note stored with the lead",
				Required:    false,
			},
		},
	}

	UpdateLead = ToolDef{
		Name:        "volkern_update_lead",
		Description: UpdateLeadPrompt,
		Title:       "Update Lead",
		ReadOnly:    false,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   true,
		Params: []ParamDef{
			{
				Name:        "leadId",
				Type:        ParamTypeString,
				Description: "Lead identifier, exactly as returned by volkern_list_leads",
				Required:    true,
			},
			{
				Name:        "nombre",
				Type:        ParamTypeString,
				Description: "New full name",
				Required:    false,
			},
			{
				Name:        "telefono",
				Type:        ParamTypeString,
				Description: "New phone number",
				Required:    false,
			},
			{
				Name:        "email",
				Type:        ParamTypeString,
				Description: "New email address",
				Required:    false,
			},
			{
				Name:        "estado",
				Type:        ParamTypeString,
				Description: "New pipeline stage",
				Required:    false,
				Enum:        leadEstados,
			},
			{
				Name:        "fuente",
				Type:        ParamTypeString,
				Description: "New acquisition source",
				Required:    false,
			},
			{
				Name:        "servicioInteres",
				Type:        ParamTypeString,
				Description: "New service of interest, from volkern_list_servicios",
				Required:    false,
			},
			{
				Name:        "etiquetas",
				Type:        ParamTypeStringArray,
				Description: "Replacement set of labels",
				Required:    false,
			},
			{
				Name:        "notas",
				Type:        ParamTypeString,
				Description: "Replacement note text",
				Required:    false,
			},
		},
	}

	CheckDisponibilidad = ToolDef{
		Name:        "volkern_check_disponibilidad",
		Description: CheckDisponibilidadPrompt,
		Title:       "Check Availability",
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   true,
		Params: []ParamDef{
			{
				Name:        "fecha",
				Type:        ParamTypeString,
				Description: "Date to check, in YYYY-MM-DD format",
				Required:    true,
				Pattern:     `^\d{4}-\d{2}-\d{2}$`,
			},
			{
				Name:        "servicioId",
				Type:        ParamTypeString,
				Description: "Service identifier, from volkern_list_servicios. Slot length depends on the service.",
				Required:    false,
			},
			{
				Name:        "duracion",
				Type:        ParamTypeNumber,
				Description: "Slot duration in minutes, overriding the service default",
				Required:    false,
			},
		},
	}

	ListCitas = ToolDef{
		Name:        "volkern_list_citas",
		Description: ListCitasPrompt,
		Title:       "List Appointments",
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   true,
		Params: []ParamDef{
			{
				Name:        "fecha",
				Type:        ParamTypeString,
				Description: "Exact date to list, in YYYY-MM-DD format",
				Required:    false,
				Pattern:     `^\d{4}-\d{2}-\d{2}$`,
			},
			{
				Name:        "desde",
				Type:        ParamTypeString,
				Description: "Range start, in YYYY-MM-DD format",
				Required:    false,
				Pattern:     `^\d{4}-\d{2}-\d{2}$`,
			},
			{
				Name:        "hasta",
				Type:        ParamTypeString,
				Description: "Range end, in YYYY-MM-DD format",
				Required:    false,
				Pattern:     `^\d{4}-\d{2}-\d{2}$`,
			},
			{
				Name:        "estado",
				Type:        ParamTypeString,
				Description: "Filter by appointment state",
				Required:    false,
				Enum:        citaEstados,
			},
			{
				Name:        "leadId",
				Type:        ParamTypeString,
				Description: "Only appointments of this lead",
				Required:    false,
			},
			{
				Name:        "page",
				Type:        ParamTypeNumber,
				Description: "Page number, starting at 1",
				Required:    false,
			},
			{
				Name:        "limit",
				Type:        ParamTypeNumber,
				Description: "Maximum number of appointments per page",
				Required:    false,
			},
		},
	}

	CreateCita = ToolDef{
		Name:        "volkern_create_cita",
		Description: CreateCitaPrompt,
		Title:       "Create Appointment",
		ReadOnly:    false,
		Destructive: false,
		Idempotent:  false,
		OpenWorld:   true,
		Params: []ParamDef{
			{
				Name:        "leadId",
				Type:        ParamTypeString,
				Description: "Lead the appointment belongs to, exactly as returned by volkern_list_leads",
				Required:    true,
			},
			{
				Name:        "fecha",
				Type:        ParamTypeString,
				Description: "Appointment date, in YYYY-MM-DD format",
				Required:    true,
				Pattern:     `^\d{4}-\d{2}-\d{2}$`,
			},
			{
				Name:        "hora",
				Type:        ParamTypeString,
				Description: "Appointment time, in HH:MM 24h format",
				Required:    true,
				Pattern:     `^([01]\d|2[0-3]):[0-5]\d$`,
			},
			{
				Name:        "servicioId",
				Type:        ParamTypeString,
				Description: "Service to book, from volkern_list_servicios",
				Required:    false,
			},
			{
				Name:        "duracion",
				Type:        ParamTypeNumber,
				Description: "Duration in minutes, overriding the service default",
				Required:    false,
			},
			{
				Name:        "notas",
				Type:        ParamTypeString,
				Description: "Notes for the staff attending the appointment",
				Required:    false,
			},
		},
	}

	UpdateCita = ToolDef{
		Name:        "volkern_update_cita",
		Description: UpdateCitaPrompt,
		Title:       "Update Appointment",
		ReadOnly:    false,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   true,
		Params: []ParamDef{
			{
				Name:        "citaId",
				Type:        ParamTypeString,
				Description: "Appointment identifier, exactly as returned by volkern_list_citas",
				Required:    true,
			},
			{
				Name:        "fecha",
				Type:        ParamTypeString,
				Description: "New date, in YYYY-MM-DD format",
				Required:    false,
				Pattern:     `^\d{4}-\d{2}-\d{2}$`,
			},
			{
				Name:        "hora",
				Type:        ParamTypeString,
				Description: "New time, in HH:MM 24h format",
				Required:    false,
				Pattern:     `^([01]\d|2[0-3]):[0-5]\d$`,
			},
			{
				Name:        "servicioId",
				Type:        ParamTypeString,
				Description: "New service, from volkern_list_servicios",
				Required:    false,
			},
			{
				Name:        "duracion",
				Type:        ParamTypeNumber,
				Description: "New duration in minutes",
				Required:    false,
			},
			{
				Name:        "estado",
				Type:        ParamTypeString,
				Description: "New appointment state. Prefer volkern_cita_accion for transitions with side effects.",
				Required:    false,
				Enum:        citaEstados,
			},
			{
				Name:        "notas",
				Type:        ParamTypeString,
				Description: "Replacement notes",
				Required:    false,
			},
		},
	}

	CitaAccion = ToolDef{
		Name:        "volkern_cita_accion",
		Description: CitaAccionPrompt,
		Title:       "Appointment Action",
		ReadOnly:    false,
		Destructive: true,
		Idempotent:  false,
		OpenWorld:   true,
		Params: []ParamDef{
			{
				Name:        "citaId",
				Type:        ParamTypeString,
				Description: "Appointment identifier, exactly as returned by volkern_list_citas",
				Required:    true,
			},
			{
				Name:        "accion",
				Type:        ParamTypeString,
				Description: "Transition to execute",
				Required:    true,
				Enum:        citaAcciones,
			},
			{
				Name:        "fecha",
				Type:        ParamTypeString,
				Description: "New date for 'reagendar', in YYYY-MM-DD format",
				Required:    false,
				Pattern:     `^\d{4}-\d{2}-\d{2}$`,
			},
			{
				Name:        "hora",
				Type:        ParamTypeString,
				Description: "New time for 'reagendar', in HH:MM 24h format",
				Required:    false,
				Pattern:     `^([01]\d|2[0-3]):[0-5]\d$`,
			},
			{
				Name:        "motivo",
				Type:        ParamTypeString,
				Description: "Reason recorded with 'cancelar' or 'reagendar'",
				Required:    false,
			},
		},
	}

	ListServicios = ToolDef{
		Name:        "volkern_list_servicios",
		Description: ListServiciosPrompt,
		Title:       "List Services",
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   true,
		Params: []ParamDef{
			{
				Name:        "categoria",
				Type:        ParamTypeString,
				Description: "Filter by service category",
				Required:    false,
			},
			{
				Name:        "activo",
				Type:        ParamTypeBoolean,
				Description: "Filter by active flag: true hides retired services (true/false, optional)",
				Required:    false,
			},
		},
	}

	GetServicio = ToolDef{
		Name:        "volkern_get_servicio",
		Description: GetServicioPrompt,
		Title:       "Get Service",
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   true,
		Params: []ParamDef{
			{
				Name:        "servicioId",
				Type:        ParamTypeString,
				Description: "Service identifier, exactly as returned by volkern_list_servicios",
				Required:    true,
			},
		},
	}

	CreateTask = ToolDef{
		Name:        "volkern_create_task",
		Description: CreateTaskPrompt,
		Title:       "Create Task",
		ReadOnly:    false,
		Destructive: false,
		Idempotent:  false,
		OpenWorld:   true,
		Params: []ParamDef{
			{
				Name:        "leadId",
				Type:        ParamTypeString,
				Description: "Lead the task belongs to, exactly as returned by volkern_list_leads",
				Required:    true,
			},
			{
				Name:        "titulo",
				Type:        ParamTypeString,
				Description: "Short, actionable task title",
				Required:    true,
			},
			{
				Name:        "descripcion",
				Type:        ParamTypeString,
				Description: "Longer description of what needs to happen",
				Required:    false,
			},
			{
				Name:        "fechaVencimiento",
				Type:        ParamTypeString,
				Description: "Due date, in YYYY-MM-DD format",
				Required:    false,
				Pattern:     `^\d{4}-\d{2}-\d{2}$`,
			},
			{
				Name:        "prioridad",
				Type:        ParamTypeString,
				Description: "Task priority",
				Required:    false,
				Enum:        taskPrioridades,
			},
		},
	}

	ListTasks = ToolDef{
		Name:        "volkern_list_tasks",
		Description: ListTasksPrompt,
		Title:       "List Tasks",
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   true,
		Params: []ParamDef{
			{
				Name:        "leadId",
				Type:        ParamTypeString,
				Description: "Lead whose tasks to list, exactly as returned by volkern_list_leads",
				Required:    true,
			},
			{
				Name:        "estado",
				Type:        ParamTypeString,
				Description: "Filter by task state",
				Required:    false,
				Enum:        taskEstados,
			},
			{
				Name:        "page",
				Type:        ParamTypeNumber,
				Description: "Page number, starting at 1",
				Required:    false,
			},
			{
				Name:        "limit",
				Type:        ParamTypeNumber,
				Description: "Maximum number of tasks per page",
				Required:    false,
			},
		},
	}

	UpdateTask = ToolDef{
		Name:        "volkern_update_task",
		Description: UpdateTaskPrompt,
		Title:       "Update Task",
		ReadOnly:    false,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   true,
		Params: []ParamDef{
			{
				Name:        "taskId",
				Type:        ParamTypeString,
				Description: "Task identifier, exactly as returned by volkern_list_tasks",
				Required:    true,
			},
			{
				Name:        "titulo",
				Type:        ParamTypeString,
				Description: "New task title",
				Required:    false,
			},
			{
				Name:        "descripcion",
				Type:        ParamTypeString,
				Description: "New description",
				Required:    false,
			},
			{
				Name:        "fechaVencimiento",
				Type:        ParamTypeString,
				Description: "New due date, in YYYY-MM-DD format",
				Required:    false,
				Pattern:     `^\d{4}-\d{2}-\d{2}$`,
			},
			{
				Name:        "prioridad",
				Type:        ParamTypeString,
				Description: "New priority",
				Required:    false,
				Enum:        taskPrioridades,
			},
			{
				Name:        "estado",
				Type:        ParamTypeString,
				Description: "New task state (set 'completada' to mark it done)",
				Required:    false,
				Enum:        taskEstados,
			},
		},
	}

	SendMensaje = ToolDef{
		Name:        "volkern_send_mensaje",
		Description: SendMensajePrompt,
		Title:       "Send Message",
		ReadOnly:    false,
		Destructive: false,
		Idempotent:  false,
		OpenWorld:   true,
		Params: []ParamDef{
			{
				Name:        "leadId",
				Type:        ParamTypeString,
				Description: "Lead to message; their phone number on file is used. Preferred over 'telefono'.",
				Required:    false,
			},
			{
				Name:        "telefono",
				Type:        ParamTypeString,
				Description: "Raw phone number to message when no lead exists",
				Required:    false,
			},
			{
				Name:        "mensaje",
				Type:        ParamTypeString,
				Description: "Message text to send",
				Required:    true,
			},
			{
				Name:        "tipo",
				Type:        ParamTypeString,
				Description: "Message kind: 'texto' for free-form, 'plantilla' for an approved template",
				Required:    false,
				Enum:        mensajeTipos,
			},
			{
				Name:        "plantilla",
				Type:        ParamTypeString,
				Description: "Template name, required when tipo is 'plantilla'",
				Required:    false,
			},
			{
				Name:        "variables",
				Type:        ParamTypeObject,
				Description: "Template variable values keyed by placeholder name",
				Required:    false,
			},
		},
	}

	ListConversaciones = ToolDef{
		Name:        "volkern_list_conversaciones",
		Description: ListConversacionesPrompt,
		Title:       "List Conversations",
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   true,
		Params: []ParamDef{
			{
				Name:        "leadId",
				Type:        ParamTypeString,
				Description: "Only the conversation belonging to this lead",
				Required:    false,
			},
			{
				Name:        "telefono",
				Type:        ParamTypeString,
				Description: "Only the conversation with this phone number",
				Required:    false,
			},
			{
				Name:        "page",
				Type:        ParamTypeNumber,
				Description: "Page number, starting at 1",
				Required:    false,
			},
			{
				Name:        "limit",
				Type:        ParamTypeNumber,
				Description: "Maximum number of conversations per page",
				Required:    false,
			},
		},
	}

	LogInteraction = ToolDef{
		Name:        "volkern_log_interaction",
		Description: LogInteractionPrompt,
		Title:       "Log Interaction",
		ReadOnly:    false,
		Destructive: false,
		Idempotent:  false,
		OpenWorld:   true,
		Params: []ParamDef{
			{
				Name:        "leadId",
				Type:        ParamTypeString,
				Description: "Lead the interaction belongs to, exactly as returned by volkern_list_leads",
				Required:    true,
			},
			{
				Name:        "tipo",
				Type:        ParamTypeString,
				Description: "Kind of interaction",
				Required:    true,
				Enum:        interactionTipos,
			},
			{
				Name:        "descripcion",
				Type:        ParamTypeString,
				Description: "Summary of what was discussed",
				Required:    true,
			},
			{
				Name:        "resultado",
				Type:        ParamTypeString,
				Description: "Outcome of the interaction (e.g., 'interesado, quiere presupuesto')",
				Required:    false,
			},
			{
				Name:        "fecha",
				Type:        ParamTypeString,
				Description: "When the interaction happened. Omit for now; set only when logging retroactively.",
				Required:    false,
			},
		},
	}

	ListInteractions = ToolDef{
		Name:        "volkern_list_interactions",
		Description: ListInteractionsPrompt,
		Title:       "List Interactions",
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   true,
		Params: []ParamDef{
			{
				Name:        "leadId",
				Type:        ParamTypeString,
				Description: "Lead whose history to list, exactly as returned by volkern_list_leads",
				Required:    true,
			},
			{
				Name:        "tipo",
				Type:        ParamTypeString,
				Description: "Filter by interaction kind",
				Required:    false,
				Enum:        interactionTipos,
			},
			{
				Name:        "page",
				Type:        ParamTypeNumber,
				Description: "Page number, starting at 1",
				Required:    false,
			},
			{
				Name:        "limit",
				Type:        ParamTypeNumber,
				Description: "Maximum number of interactions per page",
				Required:    false,
			},
		},
	}

	AddNote = ToolDef{
		Name:        "volkern_add_note",
		Description: AddNotePrompt,
		Title:       "Add Note",
		ReadOnly:    false,
		Destructive: false,
		Idempotent:  false,
		OpenWorld:   true,
		Params: []ParamDef{
			{
				Name:        "leadId",
				Type:        ParamTypeString,
				Description: "Lead the note belongs to, exactly as returned by volkern_list_leads",
				Required:    true,
			},
			{
				Name:        "contenido",
				Type:        ParamTypeString,
				Description: "Note text",
				Required:    true,
			},
		},
	}

	ListNotes = ToolDef{
		Name:        "volkern_list_notes",
		Description: ListNotesPrompt,
		Title:       "List Notes",
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   true,
		Params: []ParamDef{
			{
				Name:        "leadId",
				Type:        ParamTypeString,
				Description: "Lead whose notes to list, exactly as returned by volkern_list_leads",
				Required:    true,
			},
			{
				Name:        "page",
				Type:        ParamTypeNumber,
				Description: "Page number, starting at 1",
				Required:    false,
			},
			{
				Name:        "limit",
				Type:        ParamTypeNumber,
				Description: "Maximum number of notes per page",
				Required:    false,
			},
		},
	}
)

// AllTools returns all tool definitions in registration order
func AllTools() []ToolDef {
	return []ToolDef{
		ListLeads,
		GetLead,
		CreateLead,
		UpdateLead,
		CheckDisponibilidad,
		ListCitas,
		CreateCita,
		UpdateCita,
		CitaAccion,
		ListServicios,
		GetServicio,
		CreateTask,
		ListTasks,
		UpdateTask,
		SendMensaje,
		ListConversaciones,
		LogInteraction,
		ListInteractions,
		AddNote,
		ListNotes,
	}
}

// FindTool returns the definition for a tool name. The lookup is exact
// and case-sensitive; an unknown name is a normal, non-fatal outcome.
func FindTool(name string) (ToolDef, bool) {
	for _, def := range AllTools() {
		if def.Name == name {
			return def, true
		}
	}
	return ToolDef{}, false
}
